package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Kirojava/Arsenic/internal/auth"
	"github.com/Kirojava/Arsenic/internal/errors"
	"github.com/Kirojava/Arsenic/internal/model"
	"github.com/Kirojava/Arsenic/internal/service"
)

// RegistrationHandler handles registration and verification endpoints.
type RegistrationHandler struct {
	svc service.RegistrationService
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(svc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// CreateRegistrationRequest represents a delegate registration submission.
// The owning user comes from the authenticated session, never the body.
type CreateRegistrationRequest struct {
	Committee1          string `json:"committee1" validate:"required"`
	Committee2          string `json:"committee2"`
	Committee3          string `json:"committee3"`
	CountryPreference   string `json:"country_preference"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	EmergencyContact    string `json:"emergency_contact"`
	TshirtSize          string `json:"tshirt_size" validate:"omitempty,oneof=XS S M L XL XXL"`
}

// VerifyRequest represents a check-in code lookup.
type VerifyRequest struct {
	Code string `json:"code" validate:"required"`
}

// UpdateRegistrationRequest represents an admin correction. Only the fields
// present are applied; code, owner, fee, and creation time are not part of
// this payload and are ignored if sent.
type UpdateRegistrationRequest struct {
	Status              *string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	PaymentStatus       *string `json:"payment_status" validate:"omitempty,oneof=unpaid paid"`
	CommitteeID         *uint   `json:"committee_id"`
	DietaryRestrictions *string `json:"dietary_restrictions"`
	EmergencyContact    *string `json:"emergency_contact"`
	TshirtSize          *string `json:"tshirt_size" validate:"omitempty,oneof=XS S M L XL XXL"`
}

// Create godoc
// @Summary Submit a delegate registration
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRegistrationRequest true "Registration data"
// @Success 201 {object} model.Registration
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /registrations [post]
func (h *RegistrationHandler) Create(c echo.Context) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "missing or invalid token",
			Code:  "UNAUTHORIZED",
		})
	}

	var req CreateRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}

	registration, err := h.svc.Create(c.Request().Context(), identity.UserID, service.CreateRegistrationInput{
		Preferences: model.Preferences{
			Committee1:        req.Committee1,
			Committee2:        req.Committee2,
			Committee3:        req.Committee3,
			CountryPreference: req.CountryPreference,
		},
		DietaryRestrictions: req.DietaryRestrictions,
		EmergencyContact:    req.EmergencyContact,
		TshirtSize:          req.TshirtSize,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, registration)
}

// List godoc
// @Summary List registrations with their owners (admin)
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.RegistrationWithUser
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /registrations [get]
func (h *RegistrationHandler) List(c echo.Context) error {
	rows, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rows)
}

// Verify godoc
// @Summary Resolve a check-in code to its registration and delegate (admin)
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VerifyRequest true "Check-in code"
// @Success 200 {object} service.VerificationResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /registrations/verify [post]
func (h *RegistrationHandler) Verify(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}

	result, err := h.svc.Verify(c.Request().Context(), req.Code)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, result)
}

// Update godoc
// @Summary Update a registration's status, payment, or assignment (admin)
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param request body UpdateRegistrationRequest true "Fields to update"
// @Success 200 {object} model.Registration
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /registrations/{id} [patch]
func (h *RegistrationHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid registration id",
			Code:  "INVALID_ID",
		})
	}

	var req UpdateRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}

	input := service.UpdateRegistrationInput{
		CommitteeID:         req.CommitteeID,
		DietaryRestrictions: req.DietaryRestrictions,
		EmergencyContact:    req.EmergencyContact,
		TshirtSize:          req.TshirtSize,
	}
	if req.Status != nil {
		status := model.RegistrationStatus(*req.Status)
		input.Status = &status
	}
	if req.PaymentStatus != nil {
		payment := model.PaymentStatus(*req.PaymentStatus)
		input.PaymentStatus = &payment
	}

	registration, err := h.svc.Update(c.Request().Context(), uint(id), input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, registration)
}
