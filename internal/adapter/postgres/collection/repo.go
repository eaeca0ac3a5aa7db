// Package collection implements the saved-word repository on PostgreSQL.
package collection

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/michaelwsd/lingualift/internal/adapter/postgres"
	"github.com/michaelwsd/lingualift/internal/domain"
)

const table = "saved_words"

var columns = []string{"id", "user_id", "text", "definition", "synonym", "example_sentence", "created_at"}

// Repo provides saved-word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new collection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a saved word and returns the persisted row.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, word *domain.SavedWord) (*domain.SavedWord, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(word.ID, userID, word.Text, word.Definition, word.Synonym, word.ExampleSentence, word.CreatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert saved_word: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	saved, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "saved_word", word.ID)
	}
	return saved, nil
}

// List returns the user's saved words, most recent first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.SavedWord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list saved_words: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list saved_words: %w", err)
	}
	defer rows.Close()

	words := make([]*domain.SavedWord, 0)
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan saved_word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list saved_words: %w", err)
	}
	return words, nil
}

// Delete removes a saved word. Returns domain.ErrNotFound if the word does
// not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": wordID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete saved_word: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "saved_word", wordID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("saved_word %s: %w", wordID, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of saved words for a user.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count saved_words: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count saved_words: %w", err)
	}
	return n, nil
}

// Ping implements the readiness check.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func scanWord(row pgx.Row) (*domain.SavedWord, error) {
	var w domain.SavedWord
	if err := row.Scan(&w.ID, &w.UserID, &w.Text, &w.Definition, &w.Synonym, &w.ExampleSentence, &w.CreatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
