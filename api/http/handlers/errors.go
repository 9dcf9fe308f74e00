package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/fundi/api/http/presenter"
	"github.com/artem13815/fundi/pkg/apperr"
)

// respondError переводит ошибку доменного слоя в HTTP-ответ.
// NotFound отдаётся пустым телом.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return presenter.Empty(c, http.StatusNotFound)
	case apperr.IsValidation(err):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		return presenter.Error(c, http.StatusConflict, err.Error())
	default:
		slog.ErrorContext(c.UserContext(), "request failed",
			"method", c.Method(), "path", c.Path(), "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
}
