// Package http provides HTTP handlers for passphrase generation.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/passgen/internal/httputil"
	"github.com/allisson/passgen/internal/passphrase/http/dto"
	"github.com/allisson/passgen/internal/passphrase/usecase"

	customValidation "github.com/allisson/passgen/internal/validation"
)

// PassphraseHandler handles passphrase generation HTTP requests.
type PassphraseHandler struct {
	passphraseUseCase usecase.UseCase
	logger            *slog.Logger
}

// NewPassphraseHandler creates a new PassphraseHandler.
func NewPassphraseHandler(passphraseUseCase usecase.UseCase, logger *slog.Logger) *PassphraseHandler {
	return &PassphraseHandler{
		passphraseUseCase: passphraseUseCase,
		logger:            logger,
	}
}

// GenerateHandler generates one or more passphrases.
// POST /v1/passphrases - Returns 200 OK with the generated passphrases.
func (h *PassphraseHandler) GenerateHandler(c *gin.Context) {
	var req dto.GeneratePassphraseRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	passphrases, err := h.passphraseUseCase.GenerateBatch(
		c.Request.Context(),
		req.ToGenerateInput(),
		req.BatchCount(),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.GeneratePassphraseResponse{Passphrases: passphrases})
}
