// cmd/seeder/main.go
//
// Seeds the configured store with a handful of sample campaigns for
// local development. Respects DATABASE_DSN the same way the server
// does.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/unclebandit/campaigntrack/internal/config"
	"github.com/unclebandit/campaigntrack/internal/db"
	"github.com/unclebandit/campaigntrack/internal/model"
	"github.com/unclebandit/campaigntrack/internal/repository"
	"github.com/unclebandit/campaigntrack/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	var campaignRepo repository.CampaignRepositoryInterface
	if cfg.DatabaseDSN != "" {
		pg, err := db.InitPostgres(cfg.DatabaseDSN)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		campaignRepo = repository.NewPostgresCampaignRepository(pg)
	} else {
		campaignRepo = repository.NewFileCampaignRepository(cfg.CampaignsFile())
	}

	svc := &service.CampaignService{CampaignRepo: campaignRepo}

	samples := []model.Campaign{
		{Name: "Spring Launch", Client: "Acme", StartDate: "2026-03-01", Status: model.StatusPending},
		{Name: "Summer Sale", Client: "Globex", StartDate: "2026-06-15", Status: model.StatusActive},
		{Name: "Back to School", Client: "Initech", StartDate: "2025-08-20", Status: model.StatusCompleted},
	}

	ctx := context.Background()
	for _, s := range samples {
		c, err := svc.CreateCampaign(ctx, s.Name, s.Client, s.StartDate, s.Status)
		if err != nil {
			log.Fatalf("failed to seed %q: %v", s.Name, err)
		}
		fmt.Printf("Seeded: %s (id %d)\n", c.Name, c.ID)
	}

	fmt.Println("Seeding completed successfully!")
}
