package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AKHILESH2208/GramSeva-API/internal/model"
)

const requiredFieldsMessage = "Both 'location' and 'problem' fields are required!"

type Analyzer interface {
	Analyze(location, problem string) (*model.AnalysisResult, error)
}

type AnalyzeHandler struct {
	analyzer Analyzer
}

func NewAnalyzeHandler(analyzer Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

type analyzeRequest struct {
	Location string `json:"location"`
	Problem  string `json:"problem"`
}

func (h *AnalyzeHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Complaint Analysis API!"})
}

func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredFieldsMessage})
		return
	}

	location := strings.TrimSpace(req.Location)
	problem := strings.TrimSpace(req.Problem)
	if location == "" || problem == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredFieldsMessage})
		return
	}

	result, err := h.analyzer.Analyze(location, problem)
	if err != nil {
		slog.Error("analysis failed", "location", location, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toAnalysisResponse(result))
}

func toAnalysisResponse(result *model.AnalysisResult) AnalysisResponse {
	matched := make([]MatchedComplaintResponse, 0, len(result.MatchedComplaints))
	for _, m := range result.MatchedComplaints {
		matched = append(matched, MatchedComplaintResponse{
			ID:         m.ID,
			Location:   m.Location,
			Text:       m.Text,
			Category:   m.Category,
			ReportedAt: m.ReportedAt.Format(time.RFC3339),
			Similarity: m.Similarity,
		})
	}

	news := make([]NewsItemResponse, 0, len(result.NewsResults))
	for _, n := range result.NewsResults {
		news = append(news, NewsItemResponse{
			Title:   n.Title,
			Link:    n.Link,
			Snippet: n.Snippet,
		})
	}

	return AnalysisResponse{
		Location:          result.Location,
		Problem:           result.Problem,
		MatchedComplaints: matched,
		NewsResults:       news,
		Summary:           result.Summary.Text,
		SummaryDegraded:   result.Summary.Degraded,
		SummaryError:      result.Summary.Reason,
	}
}
