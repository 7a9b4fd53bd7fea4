package model

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Complaint struct {
	ID         int64
	Location   string
	Text       string
	Category   string
	ReportedAt time.Time
}

// MatchedComplaint is a Complaint with a similarity score against the
// problem description of one request. Never persisted.
type MatchedComplaint struct {
	Complaint
	Similarity int
}

type NewsItem struct {
	Title   string
	Link    string
	Snippet string
}

// Summary tags generated text with its failure state so callers can tell
// a real summary from a degraded fallback without inspecting the string.
type Summary struct {
	Text     string
	Degraded bool
	Reason   string
}

type AnalysisResult struct {
	Location          string
	Problem           string
	MatchedComplaints []MatchedComplaint
	NewsResults       []NewsItem
	Summary           Summary
}

// NormalizeLocation trims and title-cases a location the same way the write
// path stores it, so equality lookups match. Idempotent.
func NormalizeLocation(location string) string {
	return cases.Title(language.English).String(strings.TrimSpace(location))
}
