package main

import (
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/AKHILESH2208/GramSeva-API/db"
	"github.com/AKHILESH2208/GramSeva-API/internal/model"
	"github.com/AKHILESH2208/GramSeva-API/internal/repository"
)

type seedComplaint struct {
	Location string `json:"location"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	file := flag.String("file", "complaints.json", "JSON file with complaints to load")
	flag.Parse()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	if err := repository.EnsureSchema(db.DB); err != nil {
		log.Fatalf("error creating schema: %v", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("error opening seed file: %v", err)
	}
	defer f.Close()

	var seeds []seedComplaint
	if err := json.NewDecoder(f).Decode(&seeds); err != nil {
		log.Fatalf("error decoding seed file: %v", err)
	}

	complaintRepo := repository.NewComplaintRepository(db.DB)

	saved := 0
	for _, s := range seeds {
		location := model.NormalizeLocation(s.Location)
		if location == "" || s.Text == "" {
			slog.Warn("skipping seed record with missing fields", "location", s.Location)
			continue
		}

		complaint := &model.Complaint{
			Location: location,
			Text:     s.Text,
			Category: s.Category,
		}
		if err := complaintRepo.Save(complaint); err != nil {
			log.Fatalf("error saving complaint: %v", err)
		}
		saved++
	}

	slog.Info("seed complete", "file", *file, "saved", saved, "skipped", len(seeds)-saved)
}
