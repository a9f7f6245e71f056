package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Kirojava/Arsenic/internal/errors"
	"github.com/Kirojava/Arsenic/internal/service"
)

// CommitteeHandler handles public committee reads.
type CommitteeHandler struct {
	svc service.CommitteeService
}

// NewCommitteeHandler creates a new committee handler.
func NewCommitteeHandler(svc service.CommitteeService) *CommitteeHandler {
	return &CommitteeHandler{svc: svc}
}

// List godoc
// @Summary List committees
// @Tags committees
// @Produce json
// @Success 200 {array} model.Committee
// @Failure 500 {object} errors.ErrorResponse
// @Router /committees [get]
func (h *CommitteeHandler) List(c echo.Context) error {
	committees, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, committees)
}

// Get godoc
// @Summary Get a committee by id
// @Tags committees
// @Produce json
// @Param id path int true "Committee ID"
// @Success 200 {object} model.Committee
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /committees/{id} [get]
func (h *CommitteeHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid committee id",
			Code:  "INVALID_ID",
		})
	}

	committee, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, committee)
}
