// Package repository provides data persistence implementations for word lists.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/passgen/internal/database"
	"github.com/allisson/passgen/internal/wordlist/domain"

	apperrors "github.com/allisson/passgen/internal/errors"
)

// PostgreSQLWordListRepository handles word list persistence for PostgreSQL.
type PostgreSQLWordListRepository struct {
	db *sql.DB
}

// NewPostgreSQLWordListRepository creates a new PostgreSQLWordListRepository.
func NewPostgreSQLWordListRepository(db *sql.DB) *PostgreSQLWordListRepository {
	return &PostgreSQLWordListRepository{
		db: db,
	}
}

// Create inserts a new word list. Words are stored as a JSON array.
func (r *PostgreSQLWordListRepository) Create(ctx context.Context, wordList *domain.WordList) error {
	querier := database.GetTx(ctx, r.db)

	words, err := encodeWords(wordList.Words)
	if err != nil {
		return err
	}

	query := `INSERT INTO word_lists (id, name, words, created_at, updated_at)
			  VALUES ($1, $2, $3, NOW(), NOW())`

	_, err = querier.ExecContext(ctx, query, wordList.ID, wordList.Name, words)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrWordListAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create word list")
	}
	return nil
}

// GetByID retrieves a word list by ID.
func (r *PostgreSQLWordListRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WordList, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, words, created_at, updated_at
			  FROM word_lists WHERE id = $1`

	return scanWordList(querier.QueryRowContext(ctx, query, id), "failed to get word list by id")
}

// GetByName retrieves a word list by its unique name.
func (r *PostgreSQLWordListRepository) GetByName(ctx context.Context, name string) (*domain.WordList, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, words, created_at, updated_at
			  FROM word_lists WHERE name = $1`

	return scanWordList(querier.QueryRowContext(ctx, query, name), "failed to get word list by name")
}

// List retrieves word lists ordered by creation time, newest first.
func (r *PostgreSQLWordListRepository) List(ctx context.Context, limit, offset int) ([]*domain.WordList, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, words, created_at, updated_at
			  FROM word_lists ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list word lists")
	}
	defer func() { _ = rows.Close() }()

	wordLists := []*domain.WordList{}
	for rows.Next() {
		var wordList domain.WordList
		var words []byte
		if err := rows.Scan(
			&wordList.ID, &wordList.Name, &words, &wordList.CreatedAt, &wordList.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan word list")
		}
		if wordList.Words, err = decodeWords(words); err != nil {
			return nil, err
		}
		wordLists = append(wordLists, &wordList)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate word lists")
	}

	return wordLists, nil
}

// Update replaces the name and words of an existing word list.
func (r *PostgreSQLWordListRepository) Update(ctx context.Context, wordList *domain.WordList) error {
	querier := database.GetTx(ctx, r.db)

	words, err := encodeWords(wordList.Words)
	if err != nil {
		return err
	}

	query := `UPDATE word_lists SET name = $1, words = $2, updated_at = NOW() WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, wordList.Name, words, wordList.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrWordListAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update word list")
	}

	return checkAffected(result, "failed to update word list")
}

// Delete removes a word list by ID.
func (r *PostgreSQLWordListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM word_lists WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete word list")
	}

	return checkAffected(result, "failed to delete word list")
}

// scanWordList scans a single row into a WordList, mapping sql.ErrNoRows to
// the domain not found error.
func scanWordList(row *sql.Row, wrapMsg string) (*domain.WordList, error) {
	var wordList domain.WordList
	var words []byte

	err := row.Scan(&wordList.ID, &wordList.Name, &words, &wordList.CreatedAt, &wordList.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWordListNotFound
		}
		return nil, apperrors.Wrap(err, wrapMsg)
	}

	if wordList.Words, err = decodeWords(words); err != nil {
		return nil, err
	}

	return &wordList, nil
}

// checkAffected maps a zero-row write to the domain not found error.
func checkAffected(result sql.Result, wrapMsg string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, wrapMsg)
	}
	if affected == 0 {
		return domain.ErrWordListNotFound
	}
	return nil
}

func encodeWords(words []string) ([]byte, error) {
	data, err := json.Marshal(words)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode words")
	}
	return data, nil
}

func decodeWords(data []byte) ([]string, error) {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode words")
	}
	return words, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
