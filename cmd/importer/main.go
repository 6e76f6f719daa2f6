package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"radioreg/internal/config"
	"radioreg/internal/database"
	"radioreg/internal/modules/station"
	"radioreg/internal/repository"
)

// Bulk-loads stations from a CSV, XLSX, or pipe-delimited text file into
// the registry database. Existing station names are skipped.
func main() {
	region := flag.String("region", "", "default region for text files without a region column")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: importer [-region РЕГИОН] <file.csv|file.xlsx|file.txt>")
	}
	path := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	importer := station.NewImporter(repository.NewStationRepository(db))
	ctx := context.Background()

	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var sum station.ImportSummary
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		sum, err = importer.ImportCSV(ctx, f)
	case ".xlsx":
		sum, err = importer.ImportXLSX(ctx, f)
	default:
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			log.Fatal(readErr)
		}
		sum, err = importer.ImportText(ctx, string(data), *region)
	}
	if err != nil {
		log.Fatal("import failed: ", err)
	}

	log.Printf("imported: %d, skipped: %d, errors: %d", sum.Imported, sum.Skipped, sum.Errors)
}
