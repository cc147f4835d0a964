package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/passgen/internal/wordlist/domain"
	"github.com/allisson/passgen/internal/wordlist/http/dto"
	"github.com/allisson/passgen/internal/wordlist/usecase"
)

// fakeTxManager runs the function without a real transaction.
type fakeTxManager struct{}

func (fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepository is an in-memory word list repository.
type fakeRepository struct {
	byID   map[uuid.UUID]*domain.WordList
	byName map[string]*domain.WordList
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:   map[uuid.UUID]*domain.WordList{},
		byName: map[string]*domain.WordList{},
	}
}

func (f *fakeRepository) Create(_ context.Context, wordList *domain.WordList) error {
	if _, ok := f.byName[wordList.Name]; ok {
		return domain.ErrWordListAlreadyExists
	}
	clone := *wordList
	f.byID[wordList.ID] = &clone
	f.byName[wordList.Name] = &clone
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.WordList, error) {
	wordList, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrWordListNotFound
	}
	return wordList, nil
}

func (f *fakeRepository) GetByName(_ context.Context, name string) (*domain.WordList, error) {
	wordList, ok := f.byName[name]
	if !ok {
		return nil, domain.ErrWordListNotFound
	}
	return wordList, nil
}

func (f *fakeRepository) List(_ context.Context, limit, offset int) ([]*domain.WordList, error) {
	wordLists := []*domain.WordList{}
	for _, wordList := range f.byID {
		wordLists = append(wordLists, wordList)
	}
	if offset >= len(wordLists) {
		return []*domain.WordList{}, nil
	}
	end := offset + limit
	if end > len(wordLists) {
		end = len(wordLists)
	}
	return wordLists[offset:end], nil
}

func (f *fakeRepository) Update(_ context.Context, wordList *domain.WordList) error {
	existing, ok := f.byID[wordList.ID]
	if !ok {
		return domain.ErrWordListNotFound
	}
	delete(f.byName, existing.Name)
	clone := *wordList
	f.byID[wordList.ID] = &clone
	f.byName[wordList.Name] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	wordList, ok := f.byID[id]
	if !ok {
		return domain.ErrWordListNotFound
	}
	delete(f.byName, wordList.Name)
	delete(f.byID, id)
	return nil
}

// createTestContext creates a test Gin context with the given request.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func setupTestWordListHandler(t *testing.T) *WordListHandler {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := usecase.NewWordListUseCase(fakeTxManager{}, newFakeRepository(), logger)

	return NewWordListHandler(uc, logger)
}

func createWordList(t *testing.T, handler *WordListHandler, name string, words []string) dto.WordListResponse {
	t.Helper()

	request := dto.CreateWordListRequest{Name: name, Words: words}
	c, w := createTestContext(http.MethodPost, "/v1/word-lists", request)

	handler.CreateHandler(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.WordListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestWordListHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler := setupTestWordListHandler(t)

		response := createWordList(t, handler, "eff-short", []string{"Alpha", "bravo", "ALPHA"})

		assert.Equal(t, "eff-short", response.Name)
		assert.Equal(t, []string{"alpha", "bravo"}, response.Words)
		assert.Equal(t, 2, response.WordCount)
		assert.NotEmpty(t, response.ID)
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		handler := setupTestWordListHandler(t)

		request := dto.CreateWordListRequest{Words: []string{"alpha"}}
		c, w := createTestContext(http.MethodPost, "/v1/word-lists", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_MissingWords", func(t *testing.T) {
		handler := setupTestWordListHandler(t)

		request := dto.CreateWordListRequest{Name: "empty"}
		c, w := createTestContext(http.MethodPost, "/v1/word-lists", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_DuplicateName", func(t *testing.T) {
		handler := setupTestWordListHandler(t)
		createWordList(t, handler, "dup", []string{"alpha"})

		request := dto.CreateWordListRequest{Name: "dup", Words: []string{"bravo"}}
		c, w := createTestContext(http.MethodPost, "/v1/word-lists", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestWordListHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler := setupTestWordListHandler(t)
		created := createWordList(t, handler, "eff-short", []string{"alpha"})

		c, w := createTestContext(http.MethodGet, "/v1/word-lists/eff-short", nil)
		c.Params = gin.Params{{Key: "name", Value: "eff-short"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.WordListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, created.ID, response.ID)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler := setupTestWordListHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/word-lists/missing", nil)
		c.Params = gin.Params{{Key: "name", Value: "missing"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWordListHandler_ListHandler(t *testing.T) {
	handler := setupTestWordListHandler(t)
	createWordList(t, handler, "first", []string{"alpha"})
	createWordList(t, handler, "second", []string{"bravo"})

	c, w := createTestContext(http.MethodGet, "/v1/word-lists", nil)

	handler.ListHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ListWordListsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.WordLists, 2)
	assert.Equal(t, 50, response.Limit)
	assert.Equal(t, 0, response.Offset)
}

func TestWordListHandler_UpdateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler := setupTestWordListHandler(t)
		createWordList(t, handler, "original", []string{"alpha"})

		request := dto.UpdateWordListRequest{Name: "renamed", Words: []string{"bravo", "charlie"}}
		c, w := createTestContext(http.MethodPut, "/v1/word-lists/original", request)
		c.Params = gin.Params{{Key: "name", Value: "original"}}

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.WordListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "renamed", response.Name)
		assert.Equal(t, []string{"bravo", "charlie"}, response.Words)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler := setupTestWordListHandler(t)

		request := dto.UpdateWordListRequest{Name: "renamed", Words: []string{"alpha"}}
		c, w := createTestContext(http.MethodPut, "/v1/word-lists/missing", request)
		c.Params = gin.Params{{Key: "name", Value: "missing"}}

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWordListHandler_DeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler := setupTestWordListHandler(t)
		createWordList(t, handler, "doomed", []string{"alpha"})

		c, w := createTestContext(http.MethodDelete, "/v1/word-lists/doomed", nil)
		c.Params = gin.Params{{Key: "name", Value: "doomed"}}

		handler.DeleteHandler(c)
		// Status-only responses are not flushed to the recorder until the
		// writer is finalized, which the engine normally does after handlers.
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)

		c, w = createTestContext(http.MethodGet, "/v1/word-lists/doomed", nil)
		c.Params = gin.Params{{Key: "name", Value: "doomed"}}
		handler.GetHandler(c)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler := setupTestWordListHandler(t)

		c, w := createTestContext(http.MethodDelete, "/v1/word-lists/missing", nil)
		c.Params = gin.Params{{Key: "name", Value: "missing"}}

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
