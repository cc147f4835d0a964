// Package http provides HTTP handlers for word list management.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/passgen/internal/httputil"
	"github.com/allisson/passgen/internal/wordlist/http/dto"
	"github.com/allisson/passgen/internal/wordlist/usecase"

	customValidation "github.com/allisson/passgen/internal/validation"
)

// WordListHandler handles word list management HTTP requests.
type WordListHandler struct {
	wordListUseCase usecase.UseCase
	logger          *slog.Logger
}

// NewWordListHandler creates a new WordListHandler.
func NewWordListHandler(wordListUseCase usecase.UseCase, logger *slog.Logger) *WordListHandler {
	return &WordListHandler{
		wordListUseCase: wordListUseCase,
		logger:          logger,
	}
}

// CreateHandler creates a new word list.
// POST /v1/word-lists - Returns 201 Created with the word list.
func (h *WordListHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateWordListRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	wordList, err := h.wordListUseCase.Create(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapWordListToResponse(wordList))
}

// GetHandler retrieves a word list by name.
// GET /v1/word-lists/:name - Returns 200 OK with the word list.
func (h *WordListHandler) GetHandler(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("word list name cannot be empty"), h.logger)
		return
	}

	wordList, err := h.wordListUseCase.GetByName(c.Request.Context(), name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapWordListToResponse(wordList))
}

// ListHandler retrieves word lists with pagination.
// GET /v1/word-lists?limit=50&offset=0 - Returns 200 OK with word list summaries.
func (h *WordListHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	wordLists, err := h.wordListUseCase.List(c.Request.Context(), limit, offset)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapWordListsToListResponse(wordLists, limit, offset))
}

// UpdateHandler replaces the name and words of a word list.
// PUT /v1/word-lists/:name - Returns 200 OK with the updated word list.
func (h *WordListHandler) UpdateHandler(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("word list name cannot be empty"), h.logger)
		return
	}

	var req dto.UpdateWordListRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	existing, err := h.wordListUseCase.GetByName(c.Request.Context(), name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	wordList, err := h.wordListUseCase.Update(c.Request.Context(), existing.ID, req.ToUpdateInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapWordListToResponse(wordList))
}

// DeleteHandler removes a word list by name.
// DELETE /v1/word-lists/:name - Returns 204 No Content.
func (h *WordListHandler) DeleteHandler(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("word list name cannot be empty"), h.logger)
		return
	}

	wordList, err := h.wordListUseCase.GetByName(c.Request.Context(), name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.wordListUseCase.Delete(c.Request.Context(), wordList.ID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
