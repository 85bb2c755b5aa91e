package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arvindnr/geetika/internal/domain"
	"github.com/google/uuid"
)

// GenerationRepository implements domain.GenerationRepository using SQLite.
// The context map is stored as a JSON text column, mirroring the jsonb
// column of the original schema.
type GenerationRepository struct {
	db *sql.DB
}

// NewGenerationRepository creates a new SQLite-backed GenerationRepository.
func NewGenerationRepository(db *DB) *GenerationRepository {
	return &GenerationRepository{db: db.sqlDB}
}

func (r *GenerationRepository) Create(ctx context.Context, gen *domain.Generation) error {
	if gen.ID == "" {
		gen.ID = uuid.NewString()
	}
	if gen.Context == nil {
		gen.Context = map[string]string{}
	}
	contextJSON, err := json.Marshal(gen.Context)
	if err != nil {
		return fmt.Errorf("marshal context: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO content_generations
		 (id, user_id, content_type, language, context, generated_content, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		gen.ID, gen.UserID, gen.ContentType, gen.Language, string(contextJSON),
		gen.GeneratedContent, now,
	)
	if err != nil {
		return fmt.Errorf("insert generation: %w", err)
	}

	gen.CreatedAt = now
	return nil
}

func (r *GenerationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Generation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, content_type, language, context, generated_content, created_at
		 FROM content_generations WHERE user_id = ? ORDER BY rowid`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer rows.Close()

	var gens []domain.Generation
	for rows.Next() {
		var gen domain.Generation
		var contextJSON string
		if err := rows.Scan(&gen.ID, &gen.UserID, &gen.ContentType, &gen.Language,
			&contextJSON, &gen.GeneratedContent, &gen.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		if err := json.Unmarshal([]byte(contextJSON), &gen.Context); err != nil {
			return nil, fmt.Errorf("unmarshal context: %w", err)
		}
		gens = append(gens, gen)
	}
	return gens, rows.Err()
}
