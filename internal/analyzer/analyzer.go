// Package analyzer orchestrates one complaint analysis: stored-complaint
// lookup and ranking, news search, and summary generation.
package analyzer

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/AKHILESH2208/GramSeva-API/internal/model"
	"github.com/AKHILESH2208/GramSeva-API/pkg/llm"
	"github.com/AKHILESH2208/GramSeva-API/pkg/search"
)

const maxNewsResults = 5

type ComplaintStore interface {
	FindByLocation(location string) ([]model.Complaint, error)
}

type NewsSearcher interface {
	Search(query string, num int) ([]search.Result, error)
}

type SummaryClient interface {
	Summarize(input llm.SummaryInput) (string, error)
	ModelName() string
}

type Analyzer struct {
	store      ComplaintStore
	searcher   NewsSearcher
	summarizer SummaryClient
	threshold  int
}

func New(store ComplaintStore, searcher NewsSearcher, summarizer SummaryClient) *Analyzer {
	return &Analyzer{
		store:      store,
		searcher:   searcher,
		summarizer: summarizer,
		threshold:  DefaultThreshold,
	}
}

// Analyze runs the complaint lookup and the news lookup concurrently (they
// are data-independent), then feeds both into summary generation. A store or
// search transport failure fails the whole analysis; a generation failure
// degrades the summary instead.
func (a *Analyzer) Analyze(location, problem string) (*model.AnalysisResult, error) {
	location = model.NormalizeLocation(location)

	var matched []model.MatchedComplaint
	var news []model.NewsItem

	var g errgroup.Group

	g.Go(func() error {
		candidates, err := a.store.FindByLocation(location)
		if err != nil {
			return fmt.Errorf("complaint lookup: %w", err)
		}
		matched = Rank(problem, candidates, a.threshold)
		return nil
	})

	g.Go(func() error {
		results, err := a.searcher.Search(fmt.Sprintf("%s in %s", problem, location), maxNewsResults)
		if err != nil {
			return fmt.Errorf("news lookup: %w", err)
		}
		news = make([]model.NewsItem, len(results))
		for i, r := range results {
			news[i] = model.NewsItem{Title: r.Title, Link: r.Link, Snippet: r.Snippet}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &model.AnalysisResult{
		Location:          location,
		Problem:           problem,
		MatchedComplaints: matched,
		NewsResults:       news,
	}

	text, err := a.summarizer.Summarize(toSummaryInput(location, problem, matched, news))
	if err != nil {
		slog.Error("summary generation failed, returning degraded summary", "location", location, "error", err)
		result.Summary = model.Summary{
			Text:     fmt.Sprintf("Summary unavailable: %v", err),
			Degraded: true,
			Reason:   err.Error(),
		}
		return result, nil
	}

	result.Summary = model.Summary{Text: text}
	return result, nil
}

func toSummaryInput(location, problem string, matched []model.MatchedComplaint, news []model.NewsItem) llm.SummaryInput {
	input := llm.SummaryInput{
		Location:   location,
		Problem:    problem,
		Complaints: make([]llm.ComplaintContext, len(matched)),
		News:       make([]llm.NewsContext, len(news)),
	}
	for i, m := range matched {
		input.Complaints[i] = llm.ComplaintContext{
			Location:   m.Location,
			Text:       m.Text,
			Category:   m.Category,
			Similarity: m.Similarity,
		}
	}
	for i, n := range news {
		input.News[i] = llm.NewsContext{Title: n.Title, Link: n.Link, Snippet: n.Snippet}
	}
	return input
}
