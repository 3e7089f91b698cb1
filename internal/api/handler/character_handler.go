package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charactervault/character-api/internal/api/metrics"
	"github.com/charactervault/character-api/internal/core/ports"
)

// CharacterHandler handles HTTP requests for character records.
type CharacterHandler struct {
	service ports.CharacterService
}

func NewCharacterHandler(service ports.CharacterService) *CharacterHandler {
	return &CharacterHandler{service: service}
}

// List returns all readable characters.
//
// @Summary      List characters
// @Tags         characters
// @Produce      json
// @Success      200  {array}  characterResponse
// @Router       /api/characters [get]
func (h *CharacterHandler) List(c echo.Context) error {
	characters, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]characterResponse, 0, len(characters))
	for _, ch := range characters {
		resp = append(resp, toCharacterResponse(ch))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns one character by id.
//
// @Summary      Get a character
// @Tags         characters
// @Produce      json
// @Param        id   path      string  true  "Character id"
// @Success      200  {object}  characterResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/characters/{id} [get]
func (h *CharacterHandler) Get(c echo.Context) error {
	ch, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCharacterResponse(ch))
}

// Create stores a new character document.
//
// @Summary      Create a character
// @Tags         characters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      characterRequest  true  "Character fields"
// @Success      200   {object}  characterResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/characters [post]
func (h *CharacterHandler) Create(c echo.Context) error {
	var req characterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ch, err := h.service.Create(c.Request().Context(), toCharacterFields(req))
	if err != nil {
		return err
	}
	metrics.CharacterOpsTotal.WithLabelValues("create").Inc()

	return c.JSON(http.StatusOK, toCharacterResponse(ch))
}

// Update fully replaces a character document.
//
// @Summary      Update a character
// @Tags         characters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Character id"
// @Param        body  body      characterRequest  true  "Character fields"
// @Success      200   {object}  characterResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/characters/{id} [put]
func (h *CharacterHandler) Update(c echo.Context) error {
	var req characterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ch, err := h.service.Update(c.Request().Context(), c.Param("id"), toCharacterFields(req))
	if err != nil {
		return err
	}
	metrics.CharacterOpsTotal.WithLabelValues("update").Inc()

	return c.JSON(http.StatusOK, toCharacterResponse(ch))
}

// Delete removes a character. Deleting an unknown id still returns 200.
//
// @Summary      Delete a character
// @Tags         characters
// @Security     BearerAuth
// @Param        id  path  string  true  "Character id"
// @Success      200
// @Router       /api/characters/{id} [delete]
func (h *CharacterHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.CharacterOpsTotal.WithLabelValues("delete").Inc()

	return c.NoContent(http.StatusOK)
}
