package vidlinks

import (
	"context"
	"strings"
)

// MaxShortTitleLength is the longest short title TitleShortener produces on
// its own. Results of the fallback Shortener are not re-checked.
const MaxShortTitleLength = 25

// truncateCutset is stripped from the right after hard truncation.
const truncateCutset = " :,.|-"

// TitleShortener reduces page titles to display labels.
//
// The rules, applied in order:
//  1. Keep only the part before the first " | ".
//  2. Stop if that fits.
//  3. If there is a " - ", split on the last one and stop if the prefix fits.
//  4. Otherwise keep the whole title from step 1, even if a prefix exists.
//  5. Ask Fallback; use any non-empty answer as-is.
//  6. Truncate and strip trailing separators.
type TitleShortener struct {
	// Fallback is consulted for titles the rules cannot shorten. Optional.
	Fallback Shortener
}

// Shorten returns the short title for title. The credential is handed to
// the fallback and is otherwise unused.
func (s *TitleShortener) Shorten(ctx context.Context, title, credential string) string {
	cleaned, _, _ := strings.Cut(title, " | ")
	cleaned = strings.TrimSpace(cleaned)
	if runeLen(cleaned) <= MaxShortTitleLength {
		return cleaned
	}

	if i := strings.LastIndex(cleaned, " - "); i >= 0 {
		prefix := strings.TrimSpace(cleaned[:i])
		if runeLen(prefix) <= MaxShortTitleLength {
			return prefix
		}
	}

	// A prefix that is still too long is not used; the fallback and the
	// truncation both work from the full cleaned title.
	if short := s.fallback(ctx, cleaned, credential); short != "" {
		return short
	}
	return strings.TrimRight(TruncateLabel(cleaned, MaxShortTitleLength), truncateCutset)
}

func (s *TitleShortener) fallback(ctx context.Context, text, credential string) string {
	if s == nil || s.Fallback == nil {
		return ""
	}
	short, err := s.Fallback.Shorten(ctx, text, credential)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(short)
}

// TruncateLabel returns the first n characters of s.
// Characters are counted as runes so multi-byte text is never split.
func TruncateLabel(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func runeLen(s string) int {
	return len([]rune(s))
}
