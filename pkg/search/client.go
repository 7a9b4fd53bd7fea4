package search

// Result is one organic search hit projected to the three fields the
// analysis response exposes. Absent upstream fields are replaced with
// fixed placeholders at projection time.
type Result struct {
	Title   string
	Link    string
	Snippet string
}

type Searcher interface {
	Search(query string, num int) ([]Result, error)
	Name() string
}
