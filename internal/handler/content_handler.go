package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Kirojava/Arsenic/internal/errors"
	"github.com/Kirojava/Arsenic/internal/service"
)

// ContentHandler serves the public team, events, and gallery reads.
type ContentHandler struct {
	svc service.ContentService
}

// NewContentHandler creates a new content handler.
func NewContentHandler(svc service.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// ListTeam godoc
// @Summary List team members in display order
// @Tags content
// @Produce json
// @Success 200 {array} model.TeamMember
// @Failure 500 {object} errors.ErrorResponse
// @Router /team [get]
func (h *ContentHandler) ListTeam(c echo.Context) error {
	members, err := h.svc.TeamMembers(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, members)
}

// ListEvents godoc
// @Summary List events by date
// @Tags content
// @Produce json
// @Success 200 {array} model.Event
// @Failure 500 {object} errors.ErrorResponse
// @Router /events [get]
func (h *ContentHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.Events(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, events)
}

// ListGallery godoc
// @Summary List gallery images, newest first
// @Tags content
// @Produce json
// @Success 200 {array} model.GalleryImage
// @Failure 500 {object} errors.ErrorResponse
// @Router /gallery [get]
func (h *ContentHandler) ListGallery(c echo.Context) error {
	images, err := h.svc.GalleryImages(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, images)
}
