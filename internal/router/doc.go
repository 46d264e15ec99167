// Package router files newly captured images from the master intake
// directory into per-catalog folders. The destination is chosen from the ids
// extracted out of the filename, with Messier taking priority over NGC, IC,
// and Caldwell when a name carries several. Existing files at the
// destination are never overwritten; collisions get a numeric suffix.
package router
