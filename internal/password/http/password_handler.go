// Package http provides HTTP handlers for password generation.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/passgen/internal/httputil"
	"github.com/allisson/passgen/internal/password/http/dto"
	"github.com/allisson/passgen/internal/password/usecase"

	customValidation "github.com/allisson/passgen/internal/validation"
)

// PasswordHandler handles password generation HTTP requests.
type PasswordHandler struct {
	passwordUseCase usecase.UseCase
	logger          *slog.Logger
}

// NewPasswordHandler creates a new PasswordHandler.
func NewPasswordHandler(passwordUseCase usecase.UseCase, logger *slog.Logger) *PasswordHandler {
	return &PasswordHandler{
		passwordUseCase: passwordUseCase,
		logger:          logger,
	}
}

// GenerateHandler generates one or more passwords.
// POST /v1/passwords - Returns 200 OK with the generated passwords.
func (h *PasswordHandler) GenerateHandler(c *gin.Context) {
	var req dto.GeneratePasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	passwords, err := h.passwordUseCase.GenerateBatch(
		c.Request.Context(),
		req.ToGenerateInput(),
		req.BatchCount(),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.GeneratePasswordResponse{Passwords: passwords})
}
