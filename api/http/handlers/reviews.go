package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/fundi/api/http/presenter"
	"github.com/artem13815/fundi/pkg/apperr"
	"github.com/artem13815/fundi/pkg/review"
)

type ReviewHandler struct {
	uc review.UseCase
}

func NewReviewHandler(uc review.UseCase) *ReviewHandler { return &ReviewHandler{uc: uc} }

type createReviewRequest struct {
	JobID    int64  `json:"jobId"`
	AuthorID int64  `json:"authorId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// @Summary Оставить отзыв
// @Tags    Отзывы
// @Accept  json
// @Produce json
// @Param   input body createReviewRequest true "Отзыв"
// @Success 201 {object} review.Review
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req createReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.AuthorID == 0 {
		req.AuthorID, _ = c.Locals("userId").(int64)
	}
	r, err := h.uc.Post(c.UserContext(), review.Review{
		JobID:    req.JobID,
		AuthorID: req.AuthorID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, r)
}

// @Summary Отзывы по заявке
// @Tags    Отзывы
// @Produce json
// @Param   job_id query int true "ID заявки"
// @Success 200 {array} review.Review
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	jobID, err := queryInt64(c, "job_id")
	if err != nil {
		return respondError(c, err)
	}
	if jobID == nil {
		return respondError(c, apperr.Validation("job_id is required"))
	}
	rs, err := h.uc.ListByJob(c.UserContext(), *jobID)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, rs)
}
