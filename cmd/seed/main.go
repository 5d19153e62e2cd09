package main

import (
	"context"
	"log"

	"photoapi/internal/config"
	"photoapi/internal/database"
	"photoapi/internal/domain/photo"
	"photoapi/internal/filestore"
)

// Records every image already sitting in UPLOAD_DIR that has no row yet.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.ConnectWithOptions(cfg.DatabaseURL, database.Options{Silent: true})
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&photo.Photo{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	store, err := filestore.New(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	repo := photo.NewRepository(db)
	svc := photo.NewService(repo, store, cfg.MaxUploadSize)

	log.Printf("Importing images from %s...", store.Root())
	added, err := svc.ImportDirectory(context.Background())
	for _, name := range added {
		log.Printf("Added: %s", name)
	}
	if err != nil {
		log.Fatalf("import stopped after %d files: %v", len(added), err)
	}

	total, err := repo.Count(context.Background())
	if err != nil {
		log.Fatalf("count photos failed: %v", err)
	}
	log.Printf("seed completed: added=%d total=%d", len(added), total)
}
