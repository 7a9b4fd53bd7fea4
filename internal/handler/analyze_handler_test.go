package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/AKHILESH2208/GramSeva-API/internal/model"
)

type fakeAnalyzer struct {
	result      *model.AnalysisResult
	err         error
	gotLocation string
	gotProblem  string
}

func (f *fakeAnalyzer) Analyze(location, problem string) (*model.AnalysisResult, error) {
	f.gotLocation = location
	f.gotProblem = problem
	return f.result, f.err
}

func newTestAnalyzeRouter(a Analyzer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAnalyzeHandler(a)
	r.GET("/", h.Welcome)
	r.POST("/analyze", h.Analyze)
	return r
}

func TestWelcome(t *testing.T) {
	r := newTestAnalyzeRouter(&fakeAnalyzer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Welcome to the Complaint Analysis API!", res["message"])
}

func TestAnalyzeMissingFields(t *testing.T) {
	bodies := []string{
		`{"location": "", "problem": "x"}`,
		`{"location": "Springfield", "problem": ""}`,
		`{"location": "   ", "problem": "   "}`,
		`{}`,
		`not json`,
	}

	for _, body := range bodies {
		r := newTestAnalyzeRouter(&fakeAnalyzer{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/analyze", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]string
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "Both 'location' and 'problem' fields are required!", res["error"])
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	analyzer := &fakeAnalyzer{
		result: &model.AnalysisResult{
			Location: "Springfield",
			Problem:  "pothole on main street",
			MatchedComplaints: []model.MatchedComplaint{
				{
					Complaint: model.Complaint{
						ID:         1,
						Location:   "Springfield",
						Text:       "large pothole on Main St",
						ReportedAt: time.Now(),
					},
					Similarity: 92,
				},
			},
			NewsResults: []model.NewsItem{
				{Title: "Road repairs delayed", Link: "https://example.com/a", Snippet: "Budget cuts."},
			},
			Summary: model.Summary{Text: "Deferred maintenance is the likely cause."},
		},
	}

	r := newTestAnalyzeRouter(analyzer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(`{"location": " springfield ", "problem": "pothole on main street"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "springfield", analyzer.gotLocation)
	assert.Equal(t, "pothole on main street", analyzer.gotProblem)

	var res AnalysisResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, "Springfield", res.Location)
	assert.Equal(t, "pothole on main street", res.Problem)
	assert.Equal(t, 1, len(res.MatchedComplaints))
	assert.Equal(t, 92, res.MatchedComplaints[0].Similarity)
	assert.Equal(t, "large pothole on Main St", res.MatchedComplaints[0].Text)
	assert.Equal(t, 1, len(res.NewsResults))
	assert.Equal(t, "Road repairs delayed", res.NewsResults[0].Title)
	assert.Equal(t, "Deferred maintenance is the likely cause.", res.Summary)
	assert.Equal(t, false, res.SummaryDegraded)
}

func TestAnalyzeDegradedSummaryStillSucceeds(t *testing.T) {
	analyzer := &fakeAnalyzer{
		result: &model.AnalysisResult{
			Location: "Springfield",
			Problem:  "pothole",
			Summary: model.Summary{
				Text:     "Summary unavailable: model overloaded",
				Degraded: true,
				Reason:   "model overloaded",
			},
		},
	}

	r := newTestAnalyzeRouter(analyzer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(`{"location": "Springfield", "problem": "pothole"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res AnalysisResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, true, res.SummaryDegraded)
	assert.Equal(t, "model overloaded", res.SummaryError)
	assert.NotEqual(t, "", res.Summary)
}

func TestAnalyzeFailure(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("complaint lookup: connection refused")}

	r := newTestAnalyzeRouter(analyzer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(`{"location": "Springfield", "problem": "pothole"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "complaint lookup: connection refused", res["error"])
}
