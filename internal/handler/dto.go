package handler

type MatchedComplaintResponse struct {
	ID         int64  `json:"id"`
	Location   string `json:"location"`
	Text       string `json:"text"`
	Category   string `json:"category,omitempty"`
	ReportedAt string `json:"reported_at"`
	Similarity int    `json:"similarity"`
}

type NewsItemResponse struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type AnalysisResponse struct {
	Location          string                     `json:"location"`
	Problem           string                     `json:"problem"`
	MatchedComplaints []MatchedComplaintResponse `json:"matched_complaints"`
	NewsResults       []NewsItemResponse         `json:"news_results"`
	Summary           string                     `json:"summary"`
	SummaryDegraded   bool                       `json:"summary_degraded"`
	SummaryError      string                     `json:"summary_error,omitempty"`
}

type ComplaintResponse struct {
	ID         int64  `json:"id"`
	Location   string `json:"location"`
	Text       string `json:"text"`
	Category   string `json:"category,omitempty"`
	ReportedAt string `json:"reported_at"`
}

type ComplaintListResponse struct {
	Complaints []ComplaintResponse `json:"complaints"`
	Total      int                 `json:"total"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}
