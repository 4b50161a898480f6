// Package augment provides the application-level service for utterance
// augmentation.  It sits between the HTTP/CLI handlers and the generation
// domain logic, adding validation, optional persistence, and metrics.
package augment

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/embedding"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/generator"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/phrase"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/logging"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

// Service defines the augmentation application operations.
type Service interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateResult, error)
	GetBatch(ctx context.Context, id uuid.UUID) (*Batch, error)
	ListBatches(ctx context.Context, input *ListInput) ([]*Batch, error)
}

// GenerateInput contains input for one augmentation run.
type GenerateInput struct {
	// Utterance is the seed utterance.  Required.
	Utterance string

	// Threshold overrides the configured similarity threshold when non-nil.
	Threshold *float64

	// Persist stores the resulting batch when a repository is configured.
	Persist bool
}

// ListInput contains pagination parameters for batch listing.
type ListInput struct {
	Limit  int
	Offset int
}

// GenerateResult is the outcome of one augmentation run.
type GenerateResult struct {
	// BatchID is the persisted batch's identifier; the zero UUID when the
	// batch was not persisted.
	BatchID uuid.UUID `json:"batch_id,omitempty"`

	// Utterance is the normalized seed utterance.
	Utterance string `json:"utterance"`

	// Candidates are the generated variants, shuffled.
	Candidates []string `json:"candidates"`

	// Synonyms is the word-to-synonyms map the word pass used.
	Synonyms generator.SynonymMap `json:"synonyms,omitempty"`
}

// Batch is a persisted augmentation run.
type Batch struct {
	ID                  uuid.UUID `json:"id"`
	Utterance           string    `json:"utterance"`
	Candidates          []string  `json:"candidates"`
	SimilarityThreshold float64   `json:"similarity_threshold"`
	CreatedAt           time.Time `json:"created_at"`
}

// BatchRepository persists augmentation batches.
type BatchRepository interface {
	Save(ctx context.Context, b *Batch) error
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)
	List(ctx context.Context, limit, offset int) ([]*Batch, error)
}

// Metrics receives generation telemetry.  The monitoring package provides the
// production implementation.
type Metrics interface {
	GenerationStarted()
	GenerationSucceeded(candidates int, elapsed time.Duration)
	GenerationFailed(code string)
}

// Deps carries the service's collaborators.  Resolver, Lexicon, and Logger
// are required; the rest are optional.
type Deps struct {
	Resolver  generator.POSResolver
	Lexicon   generator.Lexicon
	Model     embedding.Model
	Table     *phrase.Table
	Repo      BatchRepository
	Metrics   Metrics
	Logger    logging.Logger
	Threshold float64

	// Seed seeds per-request shuffling.  Zero means time-seeded.
	Seed int64
}

type serviceImpl struct {
	deps Deps
}

// NewService creates the augmentation application service.
func NewService(deps Deps) Service {
	if deps.Logger == nil {
		deps.Logger = logging.Default()
	}
	if deps.Threshold == 0 {
		deps.Threshold = embedding.DefaultSimilarityThreshold
	}
	return &serviceImpl{deps: deps}
}

func (s *serviceImpl) Generate(ctx context.Context, input *GenerateInput) (*GenerateResult, error) {
	if strings.TrimSpace(input.Utterance) == "" {
		return nil, errors.New(errors.ErrCodeUtteranceEmpty, "utterance must not be empty")
	}

	threshold := s.deps.Threshold
	if input.Threshold != nil {
		threshold = *input.Threshold
		if threshold < -1 || threshold > 1 {
			return nil, errors.Newf(errors.ErrCodeThresholdInvalid,
				"threshold %v is out of range [-1, 1]", threshold)
		}
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.GenerationStarted()
	}
	start := time.Now()

	result, err := s.generate(ctx, input, threshold)
	if err != nil {
		if s.deps.Metrics != nil {
			s.deps.Metrics.GenerationFailed(errors.GetCode(err).String())
		}
		return nil, err
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.GenerationSucceeded(len(result.Candidates), time.Since(start))
	}
	return result, nil
}

func (s *serviceImpl) generate(ctx context.Context, input *GenerateInput, threshold float64) (*GenerateResult, error) {
	opts := []generator.Option{
		generator.WithThreshold(threshold),
		generator.WithLogger(s.deps.Logger),
		generator.WithRand(s.newRand()),
	}
	if s.deps.Model != nil {
		opts = append(opts, generator.WithModel(s.deps.Model))
	}
	if s.deps.Table != nil {
		opts = append(opts, generator.WithPhraseTable(s.deps.Table))
	}

	g, err := generator.New(ctx, input.Utterance, s.deps.Resolver, s.deps.Lexicon, opts...)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Utterance:  g.Utterance(),
		Candidates: g.Generate(),
		Synonyms:   g.Synonyms(),
	}

	if input.Persist {
		if s.deps.Repo == nil {
			return nil, errors.New(errors.ErrCodeServiceUnavailable, "batch persistence is not configured")
		}
		batch := &Batch{
			ID:                  uuid.New(),
			Utterance:           result.Utterance,
			Candidates:          result.Candidates,
			SimilarityThreshold: threshold,
			CreatedAt:           time.Now().UTC(),
		}
		if err := s.deps.Repo.Save(ctx, batch); err != nil {
			return nil, err
		}
		result.BatchID = batch.ID
		s.deps.Logger.Info("stored augmentation batch",
			logging.String("batch_id", batch.ID.String()),
			logging.Int("candidates", len(batch.Candidates)))
	}

	return result, nil
}

func (s *serviceImpl) GetBatch(ctx context.Context, id uuid.UUID) (*Batch, error) {
	if s.deps.Repo == nil {
		return nil, errors.New(errors.ErrCodeServiceUnavailable, "batch persistence is not configured")
	}
	return s.deps.Repo.FindByID(ctx, id)
}

func (s *serviceImpl) ListBatches(ctx context.Context, input *ListInput) ([]*Batch, error) {
	if s.deps.Repo == nil {
		return nil, errors.New(errors.ErrCodeServiceUnavailable, "batch persistence is not configured")
	}
	limit := input.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}
	return s.deps.Repo.List(ctx, limit, offset)
}

func (s *serviceImpl) newRand() *rand.Rand {
	seed := s.deps.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
