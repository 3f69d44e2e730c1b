package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"platefinder/domain"
	"platefinder/internal/api/presenters"
	"platefinder/pkg/location"
)

type (
	LocationHandler interface {
		DetectLocation(c *fiber.Ctx) error
	}

	locationHandler struct {
		locationService location.LocationService
		validator       *validator.Validate
	}
)

func NewLocationHandler(locationService location.LocationService, validator *validator.Validate) LocationHandler {
	return &locationHandler{
		locationService: locationService,
		validator:       validator,
	}
}

func (h *locationHandler) DetectLocation(c *fiber.Ctx) error {
	req := new(domain.DetectLocationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDetectLocation, domain.ErrLocationUnavailable)
	}

	res, err := h.locationService.Detect(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDetectLocation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDetectLocation)
}
