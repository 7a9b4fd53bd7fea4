package analyzer

import (
	"sort"

	"github.com/AKHILESH2208/GramSeva-API/internal/model"
	"github.com/AKHILESH2208/GramSeva-API/pkg/fuzz"
)

// DefaultThreshold is the minimum similarity score a stored complaint needs
// to count as a match.
const DefaultThreshold = 70

// Rank scores every candidate against the problem description, drops those
// below the threshold, and orders the rest by descending similarity. Equal
// scores keep the candidates' input order.
func Rank(problem string, candidates []model.Complaint, threshold int) []model.MatchedComplaint {
	matched := make([]model.MatchedComplaint, 0, len(candidates))
	for _, c := range candidates {
		score := fuzz.TokenSortRatio(problem, c.Text)
		if score >= threshold {
			matched = append(matched, model.MatchedComplaint{Complaint: c, Similarity: score})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Similarity > matched[j].Similarity
	})

	return matched
}
