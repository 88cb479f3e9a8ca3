// Command seeder bulk-imports words from a JSON file into the vocabulary.
// Entries whose text already exists (case-insensitively) are skipped, so the
// command is safe to re-run on the same file.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/okatkov/wordvault/internal/adapter/postgres"
	"github.com/okatkov/wordvault/internal/adapter/postgres/word"
	"github.com/okatkov/wordvault/internal/app"
	"github.com/okatkov/wordvault/internal/config"
	"github.com/okatkov/wordvault/internal/domain"
	"github.com/okatkov/wordvault/internal/service/vocabulary"
)

type seedEntry struct {
	Word          string   `json:"word"`
	Translation   *string  `json:"translation"`
	Description   *string  `json:"description"`
	Transcription *string  `json:"transcription"`
	PartOfSpeech  *string  `json:"partOfSpeech"`
	Synonyms      []string `json:"synonyms"`
	Antonyms      []string `json:"antonyms"`
	Examples      []string `json:"examples"`
	Tags          []string `json:"tags"`
}

func main() {
	filePath := flag.String("file", "", "path to a JSON file with an array of words")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("usage: seeder -file words.json")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, logger, *filePath); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, filePath string) error {
	entries, err := loadEntries(filePath)
	if err != nil {
		return err
	}

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := vocabulary.NewService(logger, word.New(pool), cfg.Vocabulary)

	var created, skipped, failed int
	for _, e := range entries {
		_, err := svc.CreateWord(ctx, toCreateInput(e))
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrAlreadyExists):
			skipped++
		default:
			failed++
			logger.Warn("skipping entry",
				slog.String("word", e.Word),
				slog.String("error", err.Error()),
			)
		}
	}

	logger.Info("seeding completed",
		slog.Int("created", created),
		slog.Int("skipped", skipped),
		slog.Int("failed", failed),
	)

	if failed > 0 {
		return fmt.Errorf("%d entries failed", failed)
	}
	return nil
}

func loadEntries(filePath string) ([]seedEntry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []seedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return entries, nil
}

func toCreateInput(e seedEntry) vocabulary.CreateInput {
	var pos *domain.PartOfSpeech
	if e.PartOfSpeech != nil {
		p := domain.PartOfSpeech(*e.PartOfSpeech)
		pos = &p
	}
	return vocabulary.CreateInput{
		Text:          e.Word,
		Translation:   e.Translation,
		Description:   e.Description,
		Transcription: e.Transcription,
		PartOfSpeech:  pos,
		Synonyms:      e.Synonyms,
		Antonyms:      e.Antonyms,
		Examples:      e.Examples,
		Tags:          e.Tags,
	}
}
