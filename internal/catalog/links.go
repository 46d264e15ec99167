package catalog

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var messierLinkPattern = regexp.MustCompile(`(?i)^M\s*0*(\d+)$`)

// defaultExternalLink builds the Wikipedia URL used when metadata supplies no
// explicit link. Messier objects have canonical article names; everything
// else is slugified from the object name, falling back to the id.
func defaultExternalLink(objectID, name string) string {
	if m := messierLinkPattern.FindStringSubmatch(objectID); m != nil {
		number, err := strconv.Atoi(m[1])
		if err == nil {
			return "https://en.wikipedia.org/wiki/Messier_" + strconv.Itoa(number)
		}
	}
	target := name
	if target == "" {
		target = objectID
	}
	slug := url.PathEscape(strings.ReplaceAll(target, " ", "_"))
	return "https://en.wikipedia.org/wiki/" + slug
}
