package domain

import "fmt"

// DocumentResult is the outcome of rewriting one epic
type DocumentResult struct {
	Epic        Epic
	NewText     string
	Assignments []Assignment
}

// Replacements returns how many Story ID fields were rewritten
func (d DocumentResult) Replacements() int {
	return len(d.Assignments)
}

// Changed reports whether the document must be written back
func (d DocumentResult) Changed() bool {
	return d.Replacements() > 0 && d.NewText != d.Epic.Text
}

// ReportLine returns the per-document progress line
func (d DocumentResult) ReportLine() string {
	if !d.Changed() {
		return fmt.Sprintf("%s: no Story ID lines updated", d.Epic.Name)
	}
	return fmt.Sprintf("%s: updated %d Story ID(s)", d.Epic.Name, d.Replacements())
}

// Result is the outcome of renumbering a whole ordered epic sequence
type Result struct {
	Start     int
	Next      int // Counter value after the last assignment
	Documents []DocumentResult
}

// Total returns the number of Story ID fields rewritten across all epics
func (r Result) Total() int {
	return r.Next - r.Start
}

// LastID returns the highest number assigned, or 0 when nothing was assigned
func (r Result) LastID() int {
	if r.Total() == 0 {
		return 0
	}
	return r.Next - 1
}

// Changed returns the documents that must be written back
func (r Result) Changed() []DocumentResult {
	var changed []DocumentResult
	for _, d := range r.Documents {
		if d.Changed() {
			changed = append(changed, d)
		}
	}
	return changed
}

// SummaryLine returns the final report line of a run
func (r Result) SummaryLine() string {
	if r.Total() == 0 {
		return "No Story ID updates performed."
	}
	return fmt.Sprintf("Done. Assigned through %s. Total updates: %d", FormatStoryID(r.LastID()), r.Total())
}

// Renumber walks epics in order and rewrites their Story ID fields with a
// single counter seeded at start. The counter is never reset between epics.
func Renumber(epics []Epic, start int) Result {
	res := Result{
		Start:     start,
		Next:      start,
		Documents: make([]DocumentResult, 0, len(epics)),
	}

	for _, epic := range epics {
		var doc DocumentResult
		doc.Epic = epic
		doc.NewText, doc.Assignments, res.Next = RewriteStories(epic.Text, res.Next)
		res.Documents = append(res.Documents, doc)
	}

	return res
}
