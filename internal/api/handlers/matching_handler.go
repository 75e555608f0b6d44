package handlers

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/internal/api/presenters"
	"GreenCompost-Backend/pkg/matching"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MatchingHandler interface {
		FindNearbyServices(c *fiber.Ctx) error
		RecommendBestService(c *fiber.Ctx) error
		FindDonationServices(c *fiber.Ctx) error
		FindNearbyUsers(c *fiber.Ctx) error
	}

	matchingHandler struct {
		matchingService matching.MatchingService
		validator       *validator.Validate
	}
)

func NewMatchingHandler(matchingService matching.MatchingService, validator *validator.Validate) MatchingHandler {
	return &matchingHandler{
		matchingService: matchingService,
		validator:       validator,
	}
}

func radiusFromQuery(c *fiber.Ctx) float64 {
	radius, err := strconv.ParseFloat(c.Query("radius_km", "10"), 64)
	if err != nil {
		return 0
	}
	return radius
}

func (h *matchingHandler) FindNearbyServices(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	radius := radiusFromQuery(c)

	res, err := h.matchingService.FindNearbyServices(c.Context(), userID, radius)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFindNearby, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFindNearby)
}

func (h *matchingHandler) RecommendBestService(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RecommendServiceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecommend, err)
	}

	res, err := h.matchingService.RecommendBestService(c.Context(), userID, req.ServiceType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecommend, err)
	}
	if res == nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRecommend, domain.ErrServiceNotFound)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRecommend)
}

func (h *matchingHandler) FindDonationServices(c *fiber.Ctx) error {
	res, err := h.matchingService.FindDonationServices(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFindDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFindDonation)
}

func (h *matchingHandler) FindNearbyUsers(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	radius := radiusFromQuery(c)

	res, err := h.matchingService.FindNearbyUsers(c.Context(), userID, radius)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFindNearby, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFindNearbyUsers)
}
