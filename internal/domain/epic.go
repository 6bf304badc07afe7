package domain

import (
	"cmp"
	"math"
	"regexp"
	"slices"
	"unicode"
)

// fieldSpace is the gap allowed between a field label and its value. It covers
// every rune unicode.IsSpace accepts plus the \x1c-\x1f separators, so labels
// written with a vertical tab, NBSP or an em space still match.
const fieldSpace = `[\s\v\p{Z}\x1c-\x1f\x85]*`

// epicIDRegex matches the epic's own identifier line, e.g. "**Epic ID**: MS-3".
// Digits from any script are accepted.
var epicIDRegex = regexp.MustCompile(`\*\*Epic ID\*\*:` + fieldSpace + `MS-(\p{Nd}+)`)

// Document is one candidate planning file as read from storage
type Document struct {
	Name string // File name (e.g., "EPIC_AUTH.md")
	Path string // Full path used for write-back
	Text string // Content as read, UTF-8
}

// Epic is a document that declared an epic number
type Epic struct {
	Document
	Number int
}

// ParseEpicNumber returns the first declared epic number in text.
// ok is false when the Epic ID line is missing or the number does not fit an int.
func ParseEpicNumber(text string) (n int, ok bool) {
	m := epicIDRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return parseDecimal(m[1])
}

// parseDecimal converts a run of Unicode decimal digits to an int.
// ok is false on overflow.
func parseDecimal(s string) (n int, ok bool) {
	for _, r := range s {
		d, isDigit := digitValue(r)
		if !isDigit {
			return 0, false
		}
		if n > (math.MaxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}

// digitValue returns the value of a decimal digit rune. Unicode keeps every
// Nd run as consecutive 0..9 blocks, so the offset within its range gives the value.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	for _, rng := range unicode.Nd.R16 {
		if lo, hi := rune(rng.Lo), rune(rng.Hi); r >= lo && r <= hi && rng.Stride == 1 {
			return int(r-lo) % 10, true
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if lo, hi := rune(rng.Lo), rune(rng.Hi); r >= lo && r <= hi && rng.Stride == 1 {
			return int(r-lo) % 10, true
		}
	}
	return 0, false
}

// OrderEpics keeps the documents that declare an epic number and stable-sorts
// them by that number. Documents with equal numbers keep their input order.
// The skipped documents are returned in input order.
func OrderEpics(docs []Document) (epics []Epic, skipped []Document) {
	for _, doc := range docs {
		n, ok := ParseEpicNumber(doc.Text)
		if !ok {
			skipped = append(skipped, doc)
			continue
		}
		epics = append(epics, Epic{Document: doc, Number: n})
	}

	slices.SortStableFunc(epics, func(a, b Epic) int {
		return cmp.Compare(a.Number, b.Number)
	})

	return epics, skipped
}
