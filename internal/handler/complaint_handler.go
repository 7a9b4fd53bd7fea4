package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AKHILESH2208/GramSeva-API/internal/model"
)

type ComplaintStore interface {
	Save(c *model.Complaint) error
	List(location string, limit, offset int) ([]model.Complaint, error)
	Total(location string) (int, error)
}

type ComplaintHandler struct {
	repository ComplaintStore
}

func NewComplaintHandler(repository ComplaintStore) *ComplaintHandler {
	return &ComplaintHandler{repository: repository}
}

type createComplaintRequest struct {
	Location string `json:"location"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both 'location' and 'text' fields are required!"})
		return
	}

	location := model.NormalizeLocation(req.Location)
	text := strings.TrimSpace(req.Text)
	if location == "" || text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both 'location' and 'text' fields are required!"})
		return
	}

	complaint := &model.Complaint{
		Location: location,
		Text:     text,
		Category: strings.TrimSpace(req.Category),
	}

	if err := h.repository.Save(complaint); err != nil {
		slog.Error("error saving complaint", "location", location, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, toComplaintResponse(*complaint))
}

func (h *ComplaintHandler) GetComplaints(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)
	location := model.NormalizeLocation(c.Query("location"))

	complaints, err := h.repository.List(location, limit, offset)
	if err != nil {
		slog.Error("error fetching complaints", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.Total(location)
	if err != nil {
		slog.Error("error fetching complaint total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := ComplaintListResponse{
		Complaints: make([]ComplaintResponse, 0, len(complaints)),
		Total:      total,
		Limit:      limit,
		Offset:     offset,
	}
	for _, complaint := range complaints {
		res.Complaints = append(res.Complaints, toComplaintResponse(complaint))
	}

	c.JSON(http.StatusOK, res)
}

func (h *ComplaintHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.Total("")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toComplaintResponse(complaint model.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:         complaint.ID,
		Location:   complaint.Location,
		Text:       complaint.Text,
		Category:   complaint.Category,
		ReportedAt: complaint.ReportedAt.Format(time.RFC3339),
	}
}
