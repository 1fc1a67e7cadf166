package feed

import "strings"

// StripControl removes characters that are invalid in XML 1.0 text:
// 0x00-0x08, 0x0B, 0x0C, 0x0E-0x1F and 0x7F. Tab, LF and CR survive.
// Dirty catalog data (pasted descriptions, imports) does carry these.
func StripControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if isForbiddenControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isForbiddenControl(r rune) bool {
	switch {
	case r >= 0x00 && r <= 0x08:
		return true
	case r == 0x0B || r == 0x0C:
		return true
	case r >= 0x0E && r <= 0x1F:
		return true
	case r == 0x7F:
		return true
	}
	return false
}

// StripTags drops everything between '<' and the matching '>'. An
// unterminated tag swallows the rest of the string.
func StripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inTag := false
	for _, r := range s {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
			}
		case r == '<':
			inTag = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CollapseWhitespace trims and folds runs of whitespace into single
// spaces. Used for single-line description output (JSON-LD schema).
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
