package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/fundi/api/http/presenter"
	"github.com/artem13815/fundi/pkg/catalog"
)

type CatalogHandler struct {
	uc catalog.UseCase
}

func NewCatalogHandler(uc catalog.UseCase) *CatalogHandler { return &CatalogHandler{uc: uc} }

// @Summary Список категорий
// @Tags    Каталог
// @Produce json
// @Success 200 {array} catalog.Category
// @Router  /categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	cs, err := h.uc.ListCategories(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, cs)
}

// Workers возвращает страницу исполнителей с фильтрами.
// @Summary Список исполнителей
// @Tags    Каталог
// @Produce json
// @Param   category   query string false "Название категории"
// @Param   location   query string false "Подстрока локации"
// @Param   skill      query string false "Навык (целые слова, с синонимами)"
// @Param   available  query bool   false "Только свободные"
// @Param   min_rate   query number false "Минимальная ставка"
// @Param   max_rate   query number false "Максимальная ставка"
// @Param   min_rating query number false "Минимальный рейтинг"
// @Param   page       query int    false "Номер страницы" default(1)
// @Param   limit      query int    false "Размер страницы" default(10)
// @Success 200 {object} catalog.WorkerPage
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /workers [get]
func (h *CatalogHandler) Workers(c *fiber.Ctx) error {
	f := catalog.Filter{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Skill:    c.Query("skill"),
	}
	var err error
	if f.Available, err = queryBool(c, "available"); err != nil {
		return respondError(c, err)
	}
	if f.MinRate, err = queryFloat(c, "min_rate"); err != nil {
		return respondError(c, err)
	}
	if f.MaxRate, err = queryFloat(c, "max_rate"); err != nil {
		return respondError(c, err)
	}
	if f.MinRating, err = queryFloat(c, "min_rating"); err != nil {
		return respondError(c, err)
	}
	page, limit := parsePage(c, catalog.DefaultPageLimit)

	res, err := h.uc.ListWorkers(c.UserContext(), f, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// @Summary Получить исполнителя по ID
// @Tags    Каталог
// @Produce json
// @Param   id path int true "ID исполнителя"
// @Success 200 {object} catalog.WorkerProfile
// @Failure 404
// @Router  /workers/{id} [get]
func (h *CatalogHandler) Worker(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	w, err := h.uc.GetWorker(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, w)
}
