package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/fundi/api/http/presenter"
	"github.com/artem13815/fundi/pkg/feed"
	"github.com/artem13815/fundi/pkg/job"
)

type JobHandler struct {
	jobs job.UseCase
	feed feed.UseCase
}

func NewJobHandler(jobs job.UseCase, feed feed.UseCase) *JobHandler {
	return &JobHandler{jobs: jobs, feed: feed}
}

type createJobRequest struct {
	ClientID      int64   `json:"clientId"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Location      string  `json:"location"`
	Budget        float64 `json:"budget"`
	Deadline      *string `json:"deadline"`
	ScheduledDate *string `json:"scheduledDate"`
}

// Create публикует новую заявку клиента. clientId по умолчанию берётся из токена.
// @Summary Создать заявку
// @Tags    Заявки
// @Accept  json
// @Produce json
// @Param   input body createJobRequest true "Данные заявки"
// @Success 201 {object} job.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req createJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.ClientID == 0 {
		req.ClientID, _ = c.Locals("userId").(int64)
	}
	deadline, err := parseTime("deadline", req.Deadline)
	if err != nil {
		return respondError(c, err)
	}
	scheduled, err := parseTime("scheduledDate", req.ScheduledDate)
	if err != nil {
		return respondError(c, err)
	}
	j, err := h.jobs.Create(c.UserContext(), job.Job{
		ClientID:      req.ClientID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Location:      req.Location,
		Budget:        req.Budget,
		Deadline:      deadline,
		ScheduledDate: scheduled,
	})
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, j)
}

// List возвращает все заявки, заявки клиента или ленту исполнителя.
// @Summary Список заявок
// @Tags    Заявки
// @Produce json
// @Param   client_id          query int false "Заявки клиента"
// @Param   feed_for_worker_id query int false "Лента для исполнителя"
// @Success 200 {array} job.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	clientID, err := queryInt64(c, "client_id")
	if err != nil {
		return respondError(c, err)
	}
	workerID, err := queryInt64(c, "feed_for_worker_id")
	if err != nil {
		return respondError(c, err)
	}

	var js []job.Job
	switch {
	case clientID != nil:
		js, err = h.jobs.ListByClient(c.UserContext(), *clientID)
	case workerID != nil:
		js, err = h.feed.FeedFor(c.UserContext(), *workerID)
	default:
		js, err = h.jobs.ListAll(c.UserContext())
	}
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, js)
}

// @Summary Получить заявку по ID
// @Tags    Заявки
// @Produce json
// @Param   id path int true "ID заявки"
// @Success 200 {object} job.Job
// @Failure 404
// @Router  /jobs/{id} [get]
func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	j, err := h.jobs.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, j)
}

type updateJobRequest struct {
	Title         *string     `json:"title"`
	Description   *string     `json:"description"`
	Category      *string     `json:"category"`
	Location      *string     `json:"location"`
	Budget        *float64    `json:"budget"`
	Deadline      *string     `json:"deadline"`
	Status        *job.Status `json:"status"`
	ScheduledDate *string     `json:"scheduledDate"`
	CompletedDate *string     `json:"completedDate"`
}

// Update частично обновляет заявку. Смена статуса проходит через
// допустимые переходы, остальные поля (id, clientId, workerId) не меняются.
// @Summary Обновить заявку
// @Tags    Заявки
// @Accept  json
// @Produce json
// @Param   id    path int              true "ID заявки"
// @Param   input body updateJobRequest true "Изменяемые поля"
// @Success 200 {object} job.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404
// @Router  /jobs/{id} [patch]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req updateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p := job.Patch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Budget:      req.Budget,
		Status:      req.Status,
	}
	if p.Deadline, err = parseTime("deadline", req.Deadline); err != nil {
		return respondError(c, err)
	}
	if p.ScheduledDate, err = parseTime("scheduledDate", req.ScheduledDate); err != nil {
		return respondError(c, err)
	}
	if p.CompletedDate, err = parseTime("completedDate", req.CompletedDate); err != nil {
		return respondError(c, err)
	}
	j, err := h.jobs.Update(c.UserContext(), id, p)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, j)
}

type inviteRequest struct {
	WorkerID int64 `json:"workerId"`
}

// @Summary Пригласить исполнителя
// @Tags    Заявки
// @Accept  json
// @Produce json
// @Param   id    path int           true "ID заявки"
// @Param   input body inviteRequest true "Исполнитель"
// @Success 200 {object} job.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404
// @Router  /jobs/{id}/invitations [post]
func (h *JobHandler) Invite(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req inviteRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	j, err := h.jobs.Invite(c.UserContext(), id, req.WorkerID)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, j)
}

// @Summary Заявки, назначенные исполнителю
// @Tags    Заявки
// @Produce json
// @Param   id path int true "ID исполнителя"
// @Success 200 {array} job.Job
// @Router  /worker/{id}/jobs [get]
func (h *JobHandler) WorkerJobs(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	js, err := h.jobs.ListByWorker(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, js)
}
