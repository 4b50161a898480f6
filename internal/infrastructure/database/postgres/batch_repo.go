package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/application/augment"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/logging"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

// BatchRepository is the PostgreSQL implementation of the augmentation
// service's batch store.
type BatchRepository struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewBatchRepository constructs a ready-to-use BatchRepository.
func NewBatchRepository(pool *pgxpool.Pool, logger logging.Logger) *BatchRepository {
	return &BatchRepository{pool: pool, logger: logger}
}

// Save persists one augmentation batch.
func (r *BatchRepository) Save(ctx context.Context, b *augment.Batch) error {
	r.logger.Debug("saving batch",
		logging.String("batch_id", b.ID.String()),
		logging.Int("candidates", len(b.Candidates)))

	_, err := r.pool.Exec(ctx, `
		INSERT INTO utterance_batches (id, utterance, candidates, similarity_threshold, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.Utterance, b.Candidates, b.SimilarityThreshold, b.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to insert batch")
	}
	return nil
}

// FindByID loads one batch.
func (r *BatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*augment.Batch, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, utterance, candidates, similarity_threshold, created_at
		FROM utterance_batches WHERE id = $1`, id)

	b := &augment.Batch{}
	err := row.Scan(&b.ID, &b.Utterance, &b.Candidates, &b.SimilarityThreshold, &b.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, errors.NotFound("batch not found").WithDetail(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load batch")
	}
	return b, nil
}

// List returns batches newest first.
func (r *BatchRepository) List(ctx context.Context, limit, offset int) ([]*augment.Batch, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, utterance, candidates, similarity_threshold, created_at
		FROM utterance_batches
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list batches")
	}
	defer rows.Close()

	var batches []*augment.Batch
	for rows.Next() {
		b := &augment.Batch{}
		if err := rows.Scan(&b.ID, &b.Utterance, &b.Candidates, &b.SimilarityThreshold, &b.CreatedAt); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan batch")
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate batches")
	}
	return batches, nil
}
