package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"platefinder/domain"
	"platefinder/internal/api/presenters"
	"platefinder/pkg/restaurant"
)

type (
	RestaurantHandler interface {
		GetNearbyRestaurants(c *fiber.Ctx) error
		GetRestaurantDetails(c *fiber.Ctx) error
		GetRestaurantMenu(c *fiber.Ctx) error
	}

	restaurantHandler struct {
		restaurantService restaurant.RestaurantService
		validator         *validator.Validate
	}
)

func NewRestaurantHandler(restaurantService restaurant.RestaurantService, validator *validator.Validate) RestaurantHandler {
	return &restaurantHandler{
		restaurantService: restaurantService,
		validator:         validator,
	}
}

func (h *restaurantHandler) GetNearbyRestaurants(c *fiber.Ctx) error {
	req := domain.NearbySearchRequest{
		Category: c.Query("category", ""),
	}

	if lat, err := strconv.ParseFloat(c.Query("lat", ""), 64); err == nil {
		req.Lat = &lat
	}
	if lng, err := strconv.ParseFloat(c.Query("lng", ""), 64); err == nil {
		req.Lng = &lng
	}
	if radius, err := strconv.Atoi(c.Query("radius", "0")); err == nil && radius > 0 {
		req.Radius = radius
	}

	if req.Lat == nil || req.Lng == nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurants, domain.ErrPreconditionUnmet)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurants, err)
	}

	res, err := h.restaurantService.GetNearbyRestaurants(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, providerStatus(err), domain.MessageFailedGetRestaurants, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"restaurants": res,
		"total":       len(res),
	}, fiber.StatusOK, domain.MessageSuccessGetRestaurants)
}

func (h *restaurantHandler) GetRestaurantDetails(c *fiber.Ctx) error {
	restaurantID := c.Params("id")
	if restaurantID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurantDetail, domain.ErrRestaurantNotFound)
	}

	res, err := h.restaurantService.GetRestaurantDetails(c.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRestaurantDetail, err)
		}
		return presenters.ErrorResponse(c, providerStatus(err), domain.MessageFailedGetRestaurantDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurantDetail)
}

func (h *restaurantHandler) GetRestaurantMenu(c *fiber.Ctx) error {
	restaurantID := c.Params("id")
	if restaurantID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMenu, domain.ErrRestaurantNotFound)
	}

	res, err := h.restaurantService.GetRestaurantMenu(c.Context(), restaurantID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"menu": res}, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

// providerStatus maps provider-side failures to 502 and everything else to 400.
func providerStatus(err error) int {
	if errors.Is(err, domain.ErrSearchFailed) ||
		errors.Is(err, domain.ErrProviderFailed) ||
		errors.Is(err, domain.ErrNoContent) ||
		errors.Is(err, domain.ErrMalformedResponse) {
		return fiber.StatusBadGateway
	}
	return fiber.StatusBadRequest
}
