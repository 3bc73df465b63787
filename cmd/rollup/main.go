package main

import (
	"io"
	"os"

	"github.com/invoicelens/backend/internal/importer"
	"github.com/invoicelens/backend/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// rollup recomputes the lifetime spend of every vendor from the
// invoice ledger. Run it after a migration or whenever the rollup
// column is suspected to be stale.
func main() {
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if ok && logFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dbFile, ok := os.LookupEnv("DB_FILE")
	if !ok {
		dbFile = "data/backend.db"
	}

	err := models.Connect(dbFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = importer.RecalculateVendorSpend(models.DB)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
}
