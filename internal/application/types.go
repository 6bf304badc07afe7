package application

import "storyseq/internal/domain"

// Re-export domain types for use by adapters
type (
	Document       = domain.Document
	Epic           = domain.Epic
	Assignment     = domain.Assignment
	DocumentResult = domain.DocumentResult
	Result         = domain.Result
	Run            = domain.Run
	RunAssignment  = domain.RunAssignment
)

// StartStoryID is the first story number assigned in a run
const StartStoryID = domain.StartStoryID

// FormatStoryID formats a story number as an identifier (e.g., "MS-12")
func FormatStoryID(n int) string {
	return domain.FormatStoryID(n)
}
