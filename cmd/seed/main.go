package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"photosite/internal/config"
	"photosite/internal/database"
	"photosite/internal/domain"
	"photosite/internal/modules/admin"
	"photosite/internal/repository"
)

// Seeds a development database: one admin account, the public gallery
// collections and a sample blocked window.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	db, err := database.Connect(cfg.DSN)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	ctx := context.Background()

	// ================== ADMIN ==================
	adminEmail := getenv("SEED_ADMIN_EMAIL", "admin@example.com")
	adminPassword := getenv("SEED_ADMIN_PASSWORD", "admin123")

	adminRepo := repository.NewAdminUserRepository(db)
	if _, err := adminRepo.GetByEmail(ctx, adminEmail); err != nil {
		hash, err := admin.HashPassword(adminPassword)
		if err != nil {
			log.Fatal("hashing admin password: ", err)
		}
		if err := adminRepo.Create(ctx, &domain.AdminUser{
			Email:        adminEmail,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}); err != nil {
			log.Fatal("creating admin: ", err)
		}
		log.Println("Created admin:", adminEmail)
	} else {
		log.Println("Admin already exists:", adminEmail)
	}

	// ================== COLLECTIONS ==================
	collectionRepo := repository.NewCollectionRepository(db)
	collections := []domain.Collection{
		{
			Slug:        "portraits",
			Title:       "Portraits",
			Description: "Studio and natural light portrait sessions.",
			CoverURL:    "/images/collections/portraits/cover.jpg",
			Images: []domain.CollectionImage{
				{URL: "/images/collections/portraits/01.jpg", Alt: "Window light portrait", Position: 0},
				{URL: "/images/collections/portraits/02.jpg", Alt: "Outdoor portrait at dusk", Position: 1},
			},
		},
		{
			Slug:        "weddings",
			Title:       "Weddings",
			Description: "Full day wedding coverage.",
			CoverURL:    "/images/collections/weddings/cover.jpg",
			Images: []domain.CollectionImage{
				{URL: "/images/collections/weddings/01.jpg", Alt: "First dance", Position: 0},
				{URL: "/images/collections/weddings/02.jpg", Alt: "Ceremony exit", Position: 1},
			},
		},
		{
			Slug:        "family",
			Title:       "Family",
			Description: "Family and maternity sessions.",
			CoverURL:    "/images/collections/family/cover.jpg",
		},
	}
	for _, c := range collections {
		if _, err := collectionRepo.GetBySlug(ctx, c.Slug); err == nil {
			log.Println("Collection already exists:", c.Slug)
			continue
		}
		col := c
		if err := collectionRepo.Create(ctx, &col); err != nil {
			log.Fatal("creating collection: ", err)
		}
		log.Println("Created collection:", c.Slug)
	}

	// ================== WINDOWS ==================
	windowRepo := repository.NewWindowRepository(db)
	existing, err := windowRepo.All(ctx)
	if err != nil {
		log.Fatal("listing windows: ", err)
	}
	if len(existing) == 0 {
		lunchStart := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		if err := windowRepo.Create(ctx, &domain.AvailabilityWindow{
			Kind:      domain.WindowBlocked,
			StartTime: lunchStart,
			EndTime:   lunchStart.Add(time.Hour),
			Recurring: true,
			Weekdays:  "wednesday",
			Notes:     "Lunch break",
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			log.Fatal("creating window: ", err)
		}
		log.Println("Created recurring lunch-break window")
	}

	log.Println("Seed complete")
}

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
