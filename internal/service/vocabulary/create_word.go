package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okatkov/wordvault/internal/domain"
)

// ---------------------------------------------------------------------------
// 3. CreateWord
// ---------------------------------------------------------------------------

// CreateWord creates a new vocabulary word. The word text is unique
// case-insensitively: "Apple" and "apple" are the same entry. The lookup here
// gives a friendly conflict error; the unique index on lower(word) is the
// authoritative backstop under concurrency.
func (s *Service) CreateWord(ctx context.Context, input CreateInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := domain.NormalizeWord(input.Text)

	_, err := s.words.GetByTextFold(ctx, text)
	if err == nil {
		return nil, domain.ErrAlreadyExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}

	now := time.Now().UTC()
	word := &domain.Word{
		ID:               uuid.New(),
		Text:             text,
		Translation:      input.Translation,
		Description:      input.Description,
		Transcription:    input.Transcription,
		PartOfSpeech:     input.PartOfSpeech,
		Synonyms:         input.Synonyms,
		Antonyms:         input.Antonyms,
		Examples:         input.Examples,
		Tags:             input.Tags,
		Plural:           input.Plural,
		SimplePast:       input.SimplePast,
		PastParticiple:   input.PastParticiple,
		CanSpell:         input.CanSpell,
		CanEToU:          input.CanEToU,
		CanUToE:          input.CanUToE,
		ToVerifyNextTime: input.ToVerifyNextTime,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.words.Create(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}

	s.log.Info("word created", "word_id", created.ID, "word", created.Text)

	return created, nil
}
