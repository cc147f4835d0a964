package dto

import (
	"time"

	"github.com/allisson/passgen/internal/wordlist/domain"
)

// WordListResponse represents a word list in API responses.
type WordListResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Words     []string  `json:"words"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapWordListToResponse converts a domain word list to an API response.
func MapWordListToResponse(wordList *domain.WordList) WordListResponse {
	return WordListResponse{
		ID:        wordList.ID.String(),
		Name:      wordList.Name,
		Words:     wordList.Words,
		WordCount: len(wordList.Words),
		CreatedAt: wordList.CreatedAt,
		UpdatedAt: wordList.UpdatedAt,
	}
}

// ListWordListsResponse represents a paginated word list collection.
type ListWordListsResponse struct {
	WordLists []WordListSummary `json:"word_lists"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}

// WordListSummary represents a word list without its words, for listings.
type WordListSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapWordListsToListResponse converts domain word lists to a paginated response.
func MapWordListsToListResponse(wordLists []*domain.WordList, limit, offset int) ListWordListsResponse {
	summaries := make([]WordListSummary, 0, len(wordLists))
	for _, wordList := range wordLists {
		summaries = append(summaries, WordListSummary{
			ID:        wordList.ID.String(),
			Name:      wordList.Name,
			WordCount: len(wordList.Words),
			CreatedAt: wordList.CreatedAt,
			UpdatedAt: wordList.UpdatedAt,
		})
	}
	return ListWordListsResponse{
		WordLists: summaries,
		Limit:     limit,
		Offset:    offset,
	}
}
