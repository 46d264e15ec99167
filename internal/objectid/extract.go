package objectid

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// candidatePattern finds catalog prefix + number tokens. Longer prefixes come
// first in the alternation so "NGC1976" is never read as a Caldwell token.
// Boundary rejection happens in code, see boundariesOK.
var candidatePattern = regexp.MustCompile(`(?i)(NGC|IC|M|C)[\s_-]*0*([0-9]{1,5})`)

// Extract returns the canonical object ids found in a filename stem, in
// first-seen order with duplicates removed. Leading zeros in the number are
// stripped: "IC0001" yields "IC1".
func Extract(stem string) []string {
	matches := candidatePattern.FindAllStringSubmatchIndex(stem, -1)
	if len(matches) == 0 {
		return nil
	}

	var ids []string
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		start, end := m[0], m[1]
		if !boundariesOK(stem, start, end) {
			continue
		}
		prefix := strings.ToUpper(stem[m[2]:m[3]])
		number, err := strconv.Atoi(stem[m[4]:m[5]])
		if err != nil {
			continue
		}
		id := prefix + strconv.Itoa(number)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// boundariesOK enforces the rules a lookaround-capable regex would express:
// the prefix must not be glued to a preceding letter and the number must not
// run into a trailing letter or digit.
func boundariesOK(stem string, start, end int) bool {
	if start > 0 {
		before, _ := utf8.DecodeLastRuneInString(stem[:start])
		if unicode.IsLetter(before) {
			return false
		}
	}
	if end < len(stem) {
		after, _ := utf8.DecodeRuneInString(stem[end:])
		if unicode.IsLetter(after) || unicode.IsDigit(after) {
			return false
		}
	}
	return true
}
