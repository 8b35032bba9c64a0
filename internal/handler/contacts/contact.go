package contacts

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listContacts  = store.ListContacts
	createContact = store.CreateContact
)

// @Summary     List contact messages, newest first
// @Tags        contacts
// @Produce     json
// @Success     200 {array} model.Contact
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    AdminSession
// @Router      /contacts [get]
func ListContactsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		contacts, err := listContacts(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, contacts)
	}
}

// @Summary     Submit a contact message
// @Tags        contacts
// @Accept      json
// @Produce     json
// @Param       body body api.ContactRequest true "message"
// @Success     201 {object} model.Contact
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /contact [post]
func CreateContactHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ContactRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		contact, err := createContact(c.Request().Context(), db, &model.Contact{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, contact)
	}
}
