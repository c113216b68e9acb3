package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrcauto/workshop-backoffice/internal/repository"
)

// ClientHandler serves the client search and dashboard listing.
type ClientHandler struct {
	Clients ClientStore
}

func NewClientHandler(s ClientStore) *ClientHandler { return &ClientHandler{Clients: s} }

// Search looks up a client by the phone number path segment, joined
// with one of its vehicles. First match wins.
func (h *ClientHandler) Search(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	row, err := h.Clients.SearchByPhone(ctx, c.Param("phone"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "No client found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, row)
}

// List returns every client with vehicle summary columns, ordered by
// full name, for the dashboard table.
func (h *ClientHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Clients.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}
