package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/okatkov/wordvault/internal/domain"
	"github.com/okatkov/wordvault/internal/service/quiz"
	"github.com/okatkov/wordvault/internal/service/vocabulary"
)

// vocabularyService defines the minimal interface needed by WordHandler.
type vocabularyService interface {
	ListWords(ctx context.Context, input vocabulary.ListInput) (*vocabulary.Page, error)
	GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	CreateWord(ctx context.Context, input vocabulary.CreateInput) (*domain.Word, error)
	UpdateWord(ctx context.Context, input vocabulary.UpdateInput) (*domain.Word, error)
	DeleteWord(ctx context.Context, id uuid.UUID) error
}

// quizService defines the quiz operations exposed over REST.
type quizService interface {
	Generate(ctx context.Context, input quiz.GenerateInput) ([]domain.Word, error)
	ReviewList(ctx context.Context) ([]domain.Word, error)
	Submit(ctx context.Context, input quiz.SubmitInput) (*quiz.SubmitResult, error)
}

// WordHandler serves the vocabulary REST endpoints.
type WordHandler struct {
	vocab vocabularyService
	quiz  quizService
	log   *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(vocab vocabularyService, quiz quizService, logger *slog.Logger) *WordHandler {
	return &WordHandler{
		vocab: vocab,
		quiz:  quiz,
		log:   logger.With("handler", "words"),
	}
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type wordResponse struct {
	ID               string     `json:"id"`
	Word             string     `json:"word"`
	Translation      *string    `json:"translation,omitempty"`
	Description      *string    `json:"description,omitempty"`
	Transcription    *string    `json:"transcription,omitempty"`
	PartOfSpeech     *string    `json:"partOfSpeech,omitempty"`
	Synonyms         []string   `json:"synonyms"`
	Antonyms         []string   `json:"antonyms"`
	Examples         []string   `json:"examples"`
	Tags             []string   `json:"tags"`
	Plural           *string    `json:"plural,omitempty"`
	SimplePast       *string    `json:"simplePast,omitempty"`
	PastParticiple   *string    `json:"pastParticiple,omitempty"`
	CanSpell         bool       `json:"canSpell"`
	CanEToU          bool       `json:"canEToU"`
	CanUToE          bool       `json:"canUToE"`
	ToVerifyNextTime bool       `json:"toVerifyNextTime"`
	LastVerifiedAt   *time.Time `json:"lastVerifiedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type listWordsResponse struct {
	Items      []wordResponse `json:"items"`
	NextCursor *string        `json:"nextCursor,omitempty"`
	HasMore    bool           `json:"hasMore"`
	TotalCount int            `json:"totalCount"`
}

type wordPayload struct {
	Word             *string   `json:"word"`
	Translation      *string   `json:"translation"`
	Description      *string   `json:"description"`
	Transcription    *string   `json:"transcription"`
	PartOfSpeech     *string   `json:"partOfSpeech"`
	Synonyms         *[]string `json:"synonyms"`
	Antonyms         *[]string `json:"antonyms"`
	Examples         *[]string `json:"examples"`
	Tags             *[]string `json:"tags"`
	Plural           *string   `json:"plural"`
	SimplePast       *string   `json:"simplePast"`
	PastParticiple   *string   `json:"pastParticiple"`
	CanSpell         *bool     `json:"canSpell"`
	CanEToU          *bool     `json:"canEToU"`
	CanUToE          *bool     `json:"canUToE"`
	ToVerifyNextTime *bool     `json:"toVerifyNextTime"`
}

type submitRequest struct {
	Results []submitItem `json:"results"`
}

type submitItem struct {
	WordID           string `json:"wordId"`
	CanEToU          *bool  `json:"canEToU"`
	CanUToE          *bool  `json:"canUToE"`
	ToVerifyNextTime *bool  `json:"toVerifyNextTime"`
}

type submitResponse struct {
	Applied int               `json:"applied"`
	Errors  []submitErrorItem `json:"errors,omitempty"`
}

type submitErrorItem struct {
	WordID  string `json:"wordId"`
	Message string `json:"message"`
}

func toWordResponse(w domain.Word) wordResponse {
	resp := wordResponse{
		ID:               w.ID.String(),
		Word:             w.Text,
		Translation:      w.Translation,
		Description:      w.Description,
		Transcription:    w.Transcription,
		Synonyms:         orEmptyList(w.Synonyms),
		Antonyms:         orEmptyList(w.Antonyms),
		Examples:         orEmptyList(w.Examples),
		Tags:             orEmptyList(w.Tags),
		Plural:           w.Plural,
		SimplePast:       w.SimplePast,
		PastParticiple:   w.PastParticiple,
		CanSpell:         w.CanSpell,
		CanEToU:          w.CanEToU,
		CanUToE:          w.CanUToE,
		ToVerifyNextTime: w.ToVerifyNextTime,
		LastVerifiedAt:   w.LastVerifiedAt,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
	if w.PartOfSpeech != nil {
		pos := w.PartOfSpeech.String()
		resp.PartOfSpeech = &pos
	}
	return resp
}

func toWordListResponse(words []domain.Word) []wordResponse {
	out := make([]wordResponse, len(words))
	for i, w := range words {
		out[i] = toWordResponse(w)
	}
	return out
}

func orEmptyList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func posPtr(s *string) *domain.PartOfSpeech {
	if s == nil {
		return nil
	}
	pos := domain.PartOfSpeech(*s)
	return &pos
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// List handles GET /words.
// Query params: search, sortBy, order, limit, cursor. Unknown sort fields and
// orders silently fall back to the default, a malformed cursor restarts the
// listing from the beginning.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := vocabulary.ListInput{}

	if s := q.Get("search"); s != "" {
		input.Search = &s
	}
	if sortBy := q.Get("sortBy"); domain.IsValidSortBy(sortBy) {
		input.SortBy = sortBy
	}
	if order := q.Get("order"); domain.IsValidSortOrder(order) {
		input.SortOrder = order
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		input.Limit = limit
	}
	if cursor := q.Get("cursor"); cursor != "" {
		input.Cursor = &cursor
	}

	page, err := h.vocab.ListWords(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listWordsResponse{
		Items:      toWordListResponse(page.Items),
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
		TotalCount: page.TotalCount,
	})
}

// Get handles GET /words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	word, err := h.vocab.GetWord(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// Create handles POST /words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wordPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := vocabulary.CreateInput{
		Translation:    req.Translation,
		Description:    req.Description,
		Transcription:  req.Transcription,
		PartOfSpeech:   posPtr(req.PartOfSpeech),
		Plural:         req.Plural,
		SimplePast:     req.SimplePast,
		PastParticiple: req.PastParticiple,
	}
	if req.Word != nil {
		input.Text = *req.Word
	}
	if req.Synonyms != nil {
		input.Synonyms = *req.Synonyms
	}
	if req.Antonyms != nil {
		input.Antonyms = *req.Antonyms
	}
	if req.Examples != nil {
		input.Examples = *req.Examples
	}
	if req.Tags != nil {
		input.Tags = *req.Tags
	}
	if req.CanSpell != nil {
		input.CanSpell = *req.CanSpell
	}
	if req.CanEToU != nil {
		input.CanEToU = *req.CanEToU
	}
	if req.CanUToE != nil {
		input.CanUToE = *req.CanUToE
	}
	if req.ToVerifyNextTime != nil {
		input.ToVerifyNextTime = *req.ToVerifyNextTime
	}

	created, err := h.vocab.CreateWord(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(*created))
}

// Update handles PATCH /words/{id}. Only fields present in the body change.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req wordPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := vocabulary.UpdateInput{
		WordID: id,
		Update: domain.WordUpdate{
			Text:             req.Word,
			Translation:      req.Translation,
			Description:      req.Description,
			Transcription:    req.Transcription,
			PartOfSpeech:     posPtr(req.PartOfSpeech),
			Synonyms:         req.Synonyms,
			Antonyms:         req.Antonyms,
			Examples:         req.Examples,
			Tags:             req.Tags,
			Plural:           req.Plural,
			SimplePast:       req.SimplePast,
			PastParticiple:   req.PastParticiple,
			CanSpell:         req.CanSpell,
			CanEToU:          req.CanEToU,
			CanUToE:          req.CanUToE,
			ToVerifyNextTime: req.ToVerifyNextTime,
		},
	}

	updated, err := h.vocab.UpdateWord(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(*updated))
}

// Delete handles DELETE /words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.vocab.DeleteWord(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReviewList handles GET /words/verify/list.
func (h *WordHandler) ReviewList(w http.ResponseWriter, r *http.Request) {
	words, err := h.quiz.ReviewList(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordListResponse(words))
}

// GenerateQuiz handles GET /words/verify/generate.
func (h *WordHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var input quiz.GenerateInput
	if count, err := strconv.Atoi(r.URL.Query().Get("count")); err == nil {
		input.Count = count
	}

	words, err := h.quiz.Generate(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordListResponse(words))
}

// SubmitQuiz handles POST /words/verify/submit.
func (h *WordHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := quiz.SubmitInput{Results: make([]domain.QuizResult, 0, len(req.Results))}
	for _, item := range req.Results {
		id, err := uuid.Parse(item.WordID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid wordId: "+item.WordID)
			return
		}
		input.Results = append(input.Results, domain.QuizResult{
			WordID:           id,
			CanEToU:          item.CanEToU,
			CanUToE:          item.CanUToE,
			ToVerifyNextTime: item.ToVerifyNextTime,
		})
	}

	result, err := h.quiz.Submit(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := submitResponse{Applied: result.Applied}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, submitErrorItem{
			WordID:  e.WordID.String(),
			Message: e.Message,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
