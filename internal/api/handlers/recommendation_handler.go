package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"platefinder/domain"
	"platefinder/internal/api/presenters"
	"platefinder/pkg/recommendation"
)

type (
	RecommendationHandler interface {
		GetRecommendations(c *fiber.Ctx) error
	}

	recommendationHandler struct {
		recommendationService recommendation.RecommendationService
		validator             *validator.Validate
	}
)

func NewRecommendationHandler(recommendationService recommendation.RecommendationService, validator *validator.Validate) RecommendationHandler {
	return &recommendationHandler{
		recommendationService: recommendationService,
		validator:             validator,
	}
}

func (h *recommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	req := new(domain.RecommendationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	res, err := h.recommendationService.GetRecommendations(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, providerStatus(err), domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, domain.RecommendationResponse{Recommendations: res}, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}
