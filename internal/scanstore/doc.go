// Package scanstore persists the history of batch runs, duplicate scans and
// master-image routing, in a small SQLite database under the state
// directory. History is advisory: batch tools record their outcome here so
// past runs can be reviewed, but a store failure never fails the run itself.
package scanstore
