package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/invoicelens/backend/internal/importer"
	"github.com/invoicelens/backend/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// migrate reads exported documents from a JSON file and migrates them
// into the relational schema. It can be re-run; documents that are
// already migrated fail their own transaction and leave the rest of
// the batch untouched.
func main() {
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if ok && logFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	dbFile, ok := os.LookupEnv("DB_FILE")
	if !ok {
		dbFile = "data/backend.db"
	}

	err = models.Connect(dbFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	importFile, ok := os.LookupEnv("IMPORT_FILE")
	if !ok {
		importFile = "data/documents.json"
	}

	documents, err := importer.LoadDocuments(importFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	result := importer.Run(models.DB, documents)

	log.Info().
		Int("migrated", result.Migrated).
		Int("failed", result.Failed).
		Int("skipped", result.Skipped).
		Msg("migration finished, run the rollup job to update vendor spend")
}
