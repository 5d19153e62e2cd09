package main

import (
	"context"
	"flag"
	"log"

	"photoapi/internal/config"
	"photoapi/internal/database"
	"photoapi/internal/domain/photo"
	"photoapi/internal/filestore"
)

func main() {
	prune := flag.Bool("prune", false, "delete files that no photo record points at")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.ConnectWithOptions(cfg.DatabaseURL, database.Options{Silent: true})
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	store, err := filestore.New(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	svc := photo.NewService(photo.NewRepository(db), store, cfg.MaxUploadSize)
	ctx := context.Background()

	report, err := svc.Audit(ctx)
	if err != nil {
		log.Fatalf("audit failed: %v", err)
	}
	for _, f := range report.OrphanFiles {
		log.Printf("orphan_file name=%s size=%d modified=%s", f.Name, f.Size, f.Modified.Format("2006-01-02T15:04:05Z07:00"))
	}
	for _, p := range report.MissingFiles {
		log.Printf("missing_file id=%d filename=%s", p.ID, p.Filename)
	}

	if *prune {
		removed, err := svc.PruneOrphanFiles(ctx)
		if err != nil {
			log.Fatalf("prune failed after %d files: %v", len(removed), err)
		}
		log.Printf("pruned orphan files: %d", len(removed))
	}

	log.Printf("storage audit completed: orphan_files=%d missing_files=%d", len(report.OrphanFiles), len(report.MissingFiles))
}
