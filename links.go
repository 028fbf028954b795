package vidlinks

import (
	"regexp"
	"strings"
	"unicode"
)

// PlaceholderLabel is used when no descriptive text can be found for a URL.
const PlaceholderLabel = "Link"

// urlRe matches absolute http(s) URLs with a dotted host and a 1-6 character
// top-level domain, followed by an optional path, query, or fragment.
var urlRe = regexp.MustCompile(`https?://(?:www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b(?:[-a-zA-Z0-9()@:%_+.~#?&/=]*)`)

// alnumRe reports whether a label carries any meaningful characters.
var alnumRe = regexp.MustCompile(`[a-zA-Z0-9]`)

// ExtractLinks finds every URL in a description and pairs it with a label.
//
// The label is taken from the rest of the URL's own line when that contains
// any alphanumeric text. Otherwise the previous line is used, as long as it
// is not empty and holds no URL of its own. Otherwise the label is
// PlaceholderLabel. Links are returned in order of appearance.
func ExtractLinks(description string) []Link {
	if description == "" {
		return nil
	}

	lines := strings.Split(description, "\n")
	var links []Link
	for i, line := range lines {
		for _, u := range urlRe.FindAllString(line, -1) {
			links = append(links, Link{
				Label: labelFor(lines, i, u),
				URL:   u,
			})
		}
	}
	return links
}

// labelFor derives the label of url found on lines[i].
func labelFor(lines []string, i int, url string) string {
	// Only the URL being labeled is removed; other URLs on the line stay.
	sameLine := trimSeparators(strings.ReplaceAll(lines[i], url, ""))
	if sameLine != "" && alnumRe.MatchString(sameLine) {
		return sameLine
	}

	if i > 0 {
		prev := strings.TrimSpace(lines[i-1])
		if prev != "" && !urlRe.MatchString(prev) {
			return prev
		}
	}

	return PlaceholderLabel
}

// trimSeparators strips leading and trailing whitespace, colons, hyphens,
// pipes, and arrows (U+2190 to U+2199).
func trimSeparators(s string) string {
	return strings.TrimFunc(s, isSeparator)
}

func isSeparator(r rune) bool {
	switch {
	case r == ':', r == '-', r == '|':
		return true
	case r >= '←' && r <= '↙':
		return true
	}
	return unicode.IsSpace(r)
}
