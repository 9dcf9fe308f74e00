package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/fundi/api/http/presenter"
	"github.com/artem13815/fundi/pkg/application"
)

type ApplicationHandler struct {
	uc application.UseCase
}

func NewApplicationHandler(uc application.UseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type applyRequest struct {
	WorkerID int64   `json:"workerId"`
	Message  string  `json:"message"`
	Quote    float64 `json:"quote"`
}

// Apply создаёт отклик исполнителя. workerId по умолчанию берётся из токена.
// @Summary Откликнуться на заявку
// @Tags    Отклики
// @Accept  json
// @Produce json
// @Param   id    path int          true "ID заявки"
// @Param   input body applyRequest true "Отклик"
// @Success 201 {object} application.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/applications [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	jobID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req applyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.WorkerID == 0 {
		req.WorkerID, _ = c.Locals("userId").(int64)
	}
	a, err := h.uc.Apply(c.UserContext(), jobID, req.WorkerID, req.Message, req.Quote)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, a)
}

// @Summary Список откликов
// @Tags    Отклики
// @Produce json
// @Param   client_id query int false "Отклики на заявки клиента"
// @Param   job_id    query int false "Отклики на заявку"
// @Success 200 {array} application.View
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /applications [get]
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	var (
		f   application.ListFilter
		err error
	)
	if f.ClientID, err = queryInt64(c, "client_id"); err != nil {
		return respondError(c, err)
	}
	if f.JobID, err = queryInt64(c, "job_id"); err != nil {
		return respondError(c, err)
	}
	views, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, views)
}

// Accept назначает исполнителя на заявку и отклоняет остальные отклики.
// @Summary Принять отклик
// @Tags    Отклики
// @Produce json
// @Param   id path int true "ID отклика"
// @Success 200 {object} application.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404
// @Router  /applications/{id}/accept [post]
func (h *ApplicationHandler) Accept(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	a, err := h.uc.Accept(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, a)
}

// @Summary Отклонить отклик
// @Tags    Отклики
// @Produce json
// @Param   id path int true "ID отклика"
// @Success 200 {object} application.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404
// @Router  /applications/{id}/reject [post]
func (h *ApplicationHandler) Reject(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	a, err := h.uc.Reject(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, a)
}
