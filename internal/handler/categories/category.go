package categories

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	listCategories = store.ListCategories
	createCategory = store.CreateCategory
	updateCategory = store.UpdateCategory
	deleteCategory = store.DeleteCategory
)

// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Success     200 {array} model.Category
// @Failure     500 {object} api.ErrorResponse
// @Router      /categories [get]
func ListCategoriesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		categories, err := listCategories(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, categories)
	}
}

// @Summary     Create a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       body body api.CategoryRequest true "category"
// @Success     201 {object} model.Category
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    AdminSession
// @Router      /categories [post]
func CreateCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CategoryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		category, err := createCategory(c.Request().Context(), db, &model.Category{Name: req.Name})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, category)
	}
}

// @Summary     Rename a category by ID
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id   path int                 true "category ID"
// @Param       body body api.CategoryRequest true "category"
// @Success     200 {object} model.Category
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    AdminSession
// @Router      /categories/{id} [put]
func UpdateCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid category ID"})
		}

		var req api.CategoryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		category := &model.Category{ID: id, Name: req.Name}
		if err := updateCategory(c.Request().Context(), db, category); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "category not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, category)
	}
}

// @Summary     Delete a category by ID
// @Description Refused while any product still references the category.
// @Tags        categories
// @Param       id path int true "category ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    AdminSession
// @Router      /categories/{id} [delete]
func DeleteCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid category ID"})
		}
		if err := deleteCategory(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrCategoryInUse) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "category still has products"})
			}
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "category not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
