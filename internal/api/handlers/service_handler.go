package handlers

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/internal/api/presenters"
	"GreenCompost-Backend/pkg/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ServiceHandler interface {
		SaveService(c *fiber.Ctx) error
		GetServices(c *fiber.Ctx) error
		GetServiceByName(c *fiber.Ctx) error
		DeleteService(c *fiber.Ctx) error
	}

	serviceHandler struct {
		serviceService service.ServiceService
		validator      *validator.Validate
	}
)

func NewServiceHandler(serviceService service.ServiceService, validator *validator.Validate) ServiceHandler {
	return &serviceHandler{
		serviceService: serviceService,
		validator:      validator,
	}
}

func (h *serviceHandler) SaveService(c *fiber.Ctx) error {
	req := new(domain.SaveServiceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveService, err)
	}

	res, err := h.serviceService.SaveService(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveService, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveService)
}

func (h *serviceHandler) GetServices(c *fiber.Ctx) error {
	res, err := h.serviceService.GetServices(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetServices, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetServices)
}

func (h *serviceHandler) GetServiceByName(c *fiber.Ctx) error {
	name := c.Params("name")

	res, err := h.serviceService.GetServiceByName(c.Context(), name)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetServices, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetServices)
}

func (h *serviceHandler) DeleteService(c *fiber.Ctx) error {
	name := c.Params("name")

	if err := h.serviceService.DeleteService(c.Context(), name); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteService, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteService)
}
