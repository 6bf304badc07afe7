package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestRenumber_EpicOrderNotFileOrder(t *testing.T) {
	docs := []Document{
		{Name: "EPIC_A.md", Text: "**Epic ID**: MS-2\n**Story ID**: MS-x\n**Story ID**: MS-y\n"},
		{Name: "EPIC_B.md", Text: "**Epic ID**: MS-1\n**Story ID**: MS-z\n"},
	}

	epics, _ := OrderEpics(docs)
	res := Renumber(epics, StartStoryID)

	if len(res.Documents) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(res.Documents))
	}
	if res.Documents[0].Epic.Name != "EPIC_B.md" {
		t.Errorf("expected EPIC_B.md first, got %s", res.Documents[0].Epic.Name)
	}
	if !strings.Contains(res.Documents[0].NewText, "**Story ID**: MS-10") {
		t.Errorf("EPIC_B.md should hold MS-10:\n%s", res.Documents[0].NewText)
	}

	want := "**Epic ID**: MS-2\n**Story ID**: MS-11\n**Story ID**: MS-12\n"
	if diff := cmp.Diff(want, res.Documents[1].NewText); diff != "" {
		t.Errorf("EPIC_A.md mismatch (-want +got):\n%s", diff)
	}
}

func TestRenumber_ConcreteScenario(t *testing.T) {
	docs := []Document{
		{Name: "EPIC_A.md", Text: "**Epic ID**: MS-1\n\n**Story ID**: MS-OLD\n"},
		{Name: "EPIC_B.md", Text: "**Epic ID**: MS-2\n\n**Story ID**: MS-5\n\n**Story ID**: MS-6\n"},
	}

	epics, _ := OrderEpics(docs)
	res := Renumber(epics, StartStoryID)

	if got := res.Documents[0].NewText; !strings.Contains(got, "**Story ID**: MS-10\n") {
		t.Errorf("EPIC_A.md: %q", got)
	}
	wantB := "**Epic ID**: MS-2\n\n**Story ID**: MS-11\n\n**Story ID**: MS-12\n"
	if diff := cmp.Diff(wantB, res.Documents[1].NewText); diff != "" {
		t.Errorf("EPIC_B.md mismatch (-want +got):\n%s", diff)
	}

	if res.Total() != 3 {
		t.Errorf("Total = %d, expected 3", res.Total())
	}
	if got := res.SummaryLine(); got != "Done. Assigned through MS-12. Total updates: 3" {
		t.Errorf("SummaryLine = %q", got)
	}
}

func TestRenumber_GlobalMonotonicity(t *testing.T) {
	docs := []Document{
		{Name: "EPIC_1.md", Text: "**Epic ID**: MS-3\n**Story ID**: MS-a\n"},
		{Name: "EPIC_2.md", Text: "**Epic ID**: MS-1\n**Story ID**: MS-b\n**Story ID**: MS-c\n**Story ID**: MS-d\n"},
		{Name: "EPIC_3.md", Text: "**Epic ID**: MS-2\n"},
		{Name: "EPIC_4.md", Text: "**Epic ID**: MS-4\n**Story ID**: MS-e\n**Story ID**: MS-f\n"},
	}

	epics, _ := OrderEpics(docs)
	res := Renumber(epics, StartStoryID)

	expected := StartStoryID
	for _, doc := range res.Documents {
		for _, a := range doc.Assignments {
			if a.StoryID != expected {
				t.Fatalf("%s: got MS-%d, expected MS-%d", doc.Epic.Name, a.StoryID, expected)
			}
			expected++
		}
	}

	if res.LastID() != StartStoryID+res.Total()-1 {
		t.Errorf("LastID = %d, expected %d", res.LastID(), StartStoryID+res.Total()-1)
	}
}

func TestRenumber_NoMatches(t *testing.T) {
	epics, _ := OrderEpics([]Document{{Name: "EPIC_X.md", Text: "**Epic ID**: MS-1\n"}})
	res := Renumber(epics, StartStoryID)

	doc := res.Documents[0]
	if doc.Changed() {
		t.Error("document without Story ID fields must not be marked changed")
	}
	if doc.ReportLine() != "EPIC_X.md: no Story ID lines updated" {
		t.Errorf("ReportLine = %q", doc.ReportLine())
	}
	if res.SummaryLine() != "No Story ID updates performed." {
		t.Errorf("SummaryLine = %q", res.SummaryLine())
	}
	if res.LastID() != 0 {
		t.Errorf("LastID = %d, expected 0", res.LastID())
	}
	if len(res.Changed()) != 0 {
		t.Errorf("expected no changed documents, got %d", len(res.Changed()))
	}
}

func TestDocumentResult_ChangedGuard(t *testing.T) {
	text := "**Story ID**: MS-10\n"
	doc := DocumentResult{
		Epic:        Epic{Document: Document{Name: "EPIC_A.md", Text: text}, Number: 1},
		NewText:     text,
		Assignments: []Assignment{{StoryID: 10, Previous: "MS-10", Line: 1}},
	}

	if doc.Changed() {
		t.Error("identical text must not be marked changed")
	}
	if doc.ReportLine() != "EPIC_A.md: no Story ID lines updated" {
		t.Errorf("ReportLine = %q", doc.ReportLine())
	}
}

func TestNewRun(t *testing.T) {
	epics, _ := OrderEpics([]Document{
		{Name: "EPIC_B.md", Text: "**Epic ID**: MS-2\n**Story ID**: MS-q\n"},
		{Name: "EPIC_A.md", Text: "**Epic ID**: MS-1\n\n**Story ID**: MS-p\n"},
	})
	res := Renumber(epics, StartStoryID)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	run := NewRun("run-1", at, "/tmp/planning", res)

	want := &Run{
		ID:          "run-1",
		StartedAt:   at,
		PlanningDir: "/tmp/planning",
		FirstID:     10,
		LastID:      11,
		Total:       2,
		Assignments: []RunAssignment{
			{RunID: "run-1", StoryID: "MS-10", Previous: "MS-p", EpicNumber: 1, File: "EPIC_A.md", Line: 3},
			{RunID: "run-1", StoryID: "MS-11", Previous: "MS-q", EpicNumber: 2, File: "EPIC_B.md", Line: 2},
		},
	}
	if diff := cmp.Diff(want, run); diff != "" {
		t.Errorf("run mismatch (-want +got):\n%s", diff)
	}
}
