package analyzer

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/AKHILESH2208/GramSeva-API/internal/model"
)

func TestRankEmptyCandidates(t *testing.T) {
	matched := Rank("pothole on main street", nil, DefaultThreshold)
	assert.Equal(t, 0, len(matched))
}

func TestRankFiltersBelowThreshold(t *testing.T) {
	candidates := []model.Complaint{
		{ID: 1, Location: "Springfield", Text: "large pothole on Main St"},
		{ID: 2, Location: "Springfield", Text: "zzzz qqqq"},
	}

	matched := Rank("large pothole on main street", candidates, DefaultThreshold)

	assert.Equal(t, 1, len(matched))
	assert.Equal(t, int64(1), matched[0].ID)
	if matched[0].Similarity < DefaultThreshold {
		t.Errorf("matched complaint scored %d, want at least %d", matched[0].Similarity, DefaultThreshold)
	}
}

func TestRankSortsDescending(t *testing.T) {
	candidates := []model.Complaint{
		{ID: 1, Text: "water leak near park"},
		{ID: 2, Text: "water leak"},
	}

	matched := Rank("water leak", candidates, 50)

	assert.Equal(t, 2, len(matched))
	assert.Equal(t, int64(2), matched[0].ID)
	assert.Equal(t, 100, matched[0].Similarity)
	assert.Equal(t, int64(1), matched[1].ID)
	if matched[1].Similarity >= matched[0].Similarity {
		t.Errorf("expected descending order, got %d then %d", matched[0].Similarity, matched[1].Similarity)
	}
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	candidates := []model.Complaint{
		{ID: 7, Text: "streetlight broken"},
		{ID: 3, Text: "broken streetlight"},
		{ID: 9, Text: "streetlight broken"},
	}

	matched := Rank("broken streetlight", candidates, DefaultThreshold)

	assert.Equal(t, 3, len(matched))
	assert.Equal(t, int64(7), matched[0].ID)
	assert.Equal(t, int64(3), matched[1].ID)
	assert.Equal(t, int64(9), matched[2].ID)
	for _, m := range matched {
		assert.Equal(t, 100, m.Similarity)
	}
}

func TestRankIgnoresCase(t *testing.T) {
	candidates := []model.Complaint{
		{ID: 1, Text: "LARGE POTHOLE ON MAIN ST"},
	}

	matched := Rank("large pothole on main st", candidates, DefaultThreshold)

	assert.Equal(t, 1, len(matched))
	assert.Equal(t, 100, matched[0].Similarity)
}
