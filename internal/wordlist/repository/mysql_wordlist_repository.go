package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/passgen/internal/database"
	"github.com/allisson/passgen/internal/wordlist/domain"

	apperrors "github.com/allisson/passgen/internal/errors"
)

// MySQLWordListRepository handles word list persistence for MySQL.
type MySQLWordListRepository struct {
	db *sql.DB
}

// NewMySQLWordListRepository creates a new MySQLWordListRepository.
func NewMySQLWordListRepository(db *sql.DB) *MySQLWordListRepository {
	return &MySQLWordListRepository{
		db: db,
	}
}

// Create inserts a new word list. Words are stored as a JSON array.
func (r *MySQLWordListRepository) Create(ctx context.Context, wordList *domain.WordList) error {
	querier := database.GetTx(ctx, r.db)

	words, err := encodeWords(wordList.Words)
	if err != nil {
		return err
	}

	query := `INSERT INTO word_lists (id, name, words, created_at, updated_at)
			  VALUES (?, ?, ?, NOW(), NOW())`

	_, err = querier.ExecContext(ctx, query, wordList.ID.String(), wordList.Name, words)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrWordListAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create word list")
	}
	return nil
}

// GetByID retrieves a word list by ID.
func (r *MySQLWordListRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WordList, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, words, created_at, updated_at
			  FROM word_lists WHERE id = ?`

	return scanWordList(querier.QueryRowContext(ctx, query, id.String()), "failed to get word list by id")
}

// GetByName retrieves a word list by its unique name.
func (r *MySQLWordListRepository) GetByName(ctx context.Context, name string) (*domain.WordList, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, words, created_at, updated_at
			  FROM word_lists WHERE name = ?`

	return scanWordList(querier.QueryRowContext(ctx, query, name), "failed to get word list by name")
}

// List retrieves word lists ordered by creation time, newest first.
func (r *MySQLWordListRepository) List(ctx context.Context, limit, offset int) ([]*domain.WordList, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, words, created_at, updated_at
			  FROM word_lists ORDER BY created_at DESC LIMIT ? OFFSET ?`

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
func (r *MySQLWordListRepository) Update(ctx context.Context, wordList *domain.WordList) error {
	querier := database.GetTx(ctx, r.db)

	words, err := encodeWords(wordList.Words)
	if err != nil {
		return err
	}

	query := `UPDATE word_lists SET name = ?, words = ?, updated_at = NOW() WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, wordList.Name, words, wordList.ID.String())
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrWordListAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update word list")
	}

	return checkAffected(result, "failed to update word list")
}

// Delete removes a word list by ID.
func (r *MySQLWordListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM word_lists WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to delete word list")
	}

	return checkAffected(result, "failed to delete word list")
}

// isMySQLUniqueViolation checks if the error is a MySQL duplicate entry error (1062).
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "error 1062") || strings.Contains(errMsg, "duplicate entry")
}
