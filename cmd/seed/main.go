package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/vivahsetu/vivahsetu/config"
	"github.com/vivahsetu/vivahsetu/internal/application"
	"github.com/vivahsetu/vivahsetu/internal/domain/entity"
	"github.com/vivahsetu/vivahsetu/internal/infrastructure/kvstore"
)

// Seeds a demo account and a couple of listings into the local sqlite store
// so the API has something to show right after checkout.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	store, err := kvstore.NewSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to open sqlite store: %v", err)
	}
	defer func() { _ = store.Close() }()

	accounts := application.NewAccountService(store, nil)
	biodata := application.NewBiodataService(store, nil)

	email := "demo@vivahsetu.local"
	password := "password123"

	u, err := accounts.Register(ctx, "Demo User", email, password)
	if errors.Is(err, application.ErrDuplicateEmail) {
		fmt.Printf("demo account already present: %s\n", email)
	} else if err != nil {
		log.Fatalf("failed to seed account: %v", err)
	} else {
		fmt.Printf("seeded account: id=%s email=%s password=%s\n", u.ID, u.Email, password)
	}

	existing, err := biodata.List(ctx)
	if err != nil {
		log.Fatalf("failed to list profiles: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("profiles already present: %d, skipping\n", len(existing))
		return
	}

	samples := []entity.Profile{
		{
			OwnerEmail: email,
			Name:       "Ananya Sharma",
			Gender:     "Female",
			DOB:        "1996-04-12",
			Contact:    "9876543210",
			Email:      "ananya.sharma@example.com",
			Height:     "5'4\"",
			Education:  "M.Sc. Computer Science",
			Occupation: "Software Engineer",
			Location:   "Mumbai",
			Religion:   "Hindu",
		},
		{
			OwnerEmail: email,
			Name:       "Rohan Verma",
			Gender:     "Male",
			DOB:        "1993-11-02",
			Contact:    "9123456780",
			Email:      "rohan.verma@example.com",
			Height:     "5'10\"",
			Education:  "B.Tech Mechanical",
			Occupation: "Design Engineer",
			Location:   "Pune",
			Religion:   "Hindu",
		},
	}
	for _, p := range samples {
		created, err := biodata.Create(ctx, p)
		if err != nil {
			log.Fatalf("failed to seed profile %q: %v", p.Name, err)
		}
		fmt.Printf("seeded profile: id=%s name=%s location=%s\n", created.ID, created.Name, created.Location)
	}
}
