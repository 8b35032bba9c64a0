package products

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
	listProducts           = store.ListProducts
	getProductByID         = store.GetProductByID
	listProductsByCategory = store.ListProductsByCategory
	createProduct          = store.CreateProduct
	updateProduct          = store.UpdateProduct
	deleteProduct          = store.DeleteProduct
)

// @Summary     List products
// @Tags        products
// @Produce     json
// @Success     200 {array} model.Product
// @Failure     500 {object} api.ErrorResponse
// @Router      /products [get]
func ListProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := listProducts(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, products)
	}
}

// @Summary     Get a product by ID
// @Tags        products
// @Produce     json
// @Param       id path int true "product ID"
// @Success     200 {object} model.Product
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products/{id} [get]
func GetProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}
		product, err := getProductByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, product)
	}
}

// @Summary     List products in a category
// @Tags        products
// @Produce     json
// @Param       category path string true "category name"
// @Success     200 {array} model.Product
// @Failure     500 {object} api.ErrorResponse
// @Router      /products/category/{category} [get]
func ListProductsByCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := listProductsByCategory(c.Request().Context(), db, c.Param("category"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, products)
	}
}

// @Summary     Create a product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       body body api.ProductRequest true "product"
// @Success     201 {object} model.Product
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    AdminSession
// @Router      /products [post]
func CreateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		product, err := createProduct(c.Request().Context(), db, &model.Product{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			ImageURL:    req.ImageURL,
			Price:       req.Price,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, product)
	}
}

// @Summary     Update a product by ID
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id   path int                true "product ID"
// @Param       body body api.ProductRequest true "product"
// @Success     200 {object} model.Product
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    AdminSession
// @Router      /products/{id} [put]
func UpdateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}

		var req api.ProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		product := &model.Product{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			ImageURL:    req.ImageURL,
			Price:       req.Price,
		}
		if err := updateProduct(c.Request().Context(), db, product); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, product)
	}
}

// @Summary     Delete a product by ID
// @Tags        products
// @Param       id path int true "product ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    AdminSession
// @Router      /products/{id} [delete]
func DeleteProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}
		if err := deleteProduct(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
