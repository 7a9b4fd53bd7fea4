package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AKHILESH2208/GramSeva-API/db"
	"github.com/AKHILESH2208/GramSeva-API/internal/analyzer"
	"github.com/AKHILESH2208/GramSeva-API/internal/handler"
	"github.com/AKHILESH2208/GramSeva-API/internal/repository"
	"github.com/AKHILESH2208/GramSeva-API/pkg/llm"
	"github.com/AKHILESH2208/GramSeva-API/pkg/search"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	complaintRepo := repository.NewComplaintRepository(db.DB)

	searcher := search.NewSerperClient(os.Getenv("SERPER_API_KEY"))

	summarizer, err := llm.NewFromEnv()
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}
	slog.Info("LLM client ready", "model", summarizer.ModelName())

	complaintAnalyzer := analyzer.New(complaintRepo, searcher, summarizer)
	analyzeHandler := handler.NewAnalyzeHandler(complaintAnalyzer)
	complaintHandler := handler.NewComplaintHandler(complaintRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", analyzeHandler.Welcome)
	r.POST("/analyze", analyzeHandler.Analyze)
	r.POST("/complaints", complaintHandler.CreateComplaint)
	r.GET("/complaints", complaintHandler.GetComplaints)
	r.GET("/health", complaintHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
