package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// StartStoryID is the first story number assigned in a run.
// Epics occupy MS-1..MS-9, so stories start right after them.
const StartStoryID = 10

const storyIDPrefix = "MS-"

var (
	// storyFieldRegex anchors on the label; the existing value is discarded
	storyFieldRegex = regexp.MustCompile(`(\*\*Story ID\*\*:` + fieldSpace + `)MS-[A-Za-z0-9\-]+`)
	storyIDRegex    = regexp.MustCompile(`^MS-(\d+)$`)
)

// Assignment records one rewritten Story ID field
type Assignment struct {
	StoryID  int    // Newly assigned number
	Previous string // Value that was replaced (e.g., "MS-TBD")
	Line     int    // 1-based line of the label in the original text
}

// ID returns the formatted identifier (e.g., "MS-12")
func (a Assignment) ID() string {
	return FormatStoryID(a.StoryID)
}

// FormatStoryID formats a story number as an identifier
func FormatStoryID(n int) string {
	return fmt.Sprintf("%s%d", storyIDPrefix, n)
}

// ParseStoryID parses a canonical identifier such as "MS-12"
func ParseStoryID(id string) (int, error) {
	m := storyIDRegex.FindStringSubmatch(strings.TrimSpace(id))
	if m == nil {
		return 0, fmt.Errorf("invalid story ID: %s", id)
	}
	return strconv.Atoi(m[1])
}

// CountStoryFields returns how many Story ID fields text contains
func CountStoryFields(text string) int {
	return len(storyFieldRegex.FindAllStringIndex(text, -1))
}

// RewriteStories replaces every Story ID value in text, top to bottom, with
// sequential identifiers starting at next. It returns the new text, the
// assignments made and the counter value to continue from.
func RewriteStories(text string, next int) (string, []Assignment, int) {
	locs := storyFieldRegex.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text, nil, next
	}

	var (
		b           strings.Builder
		assignments = make([]Assignment, 0, len(locs))
		last        int
		line        = 1
	)
	b.Grow(len(text))

	for _, loc := range locs {
		start, end := loc[0], loc[1]
		prefixEnd := loc[3]

		line += strings.Count(text[last:start], "\n")

		b.WriteString(text[last:start])
		b.WriteString(text[start:prefixEnd])
		b.WriteString(FormatStoryID(next))

		assignments = append(assignments, Assignment{
			StoryID:  next,
			Previous: text[prefixEnd:end],
			Line:     line,
		})

		line += strings.Count(text[start:end], "\n")
		last = end
		next++
	}
	b.WriteString(text[last:])

	return b.String(), assignments, next
}
