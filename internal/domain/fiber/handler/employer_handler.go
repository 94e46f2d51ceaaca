package handler

import (
	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/middleware"
	"github.com/fadilmartias/skillsyncer/internal/model"
	"github.com/fadilmartias/skillsyncer/internal/repository"
	"github.com/fadilmartias/skillsyncer/internal/response"
	"github.com/fadilmartias/skillsyncer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type EmployerHandler struct {
	postings PostingService
	apps     ApplicationService
}

func NewEmployerHandler(postings PostingService, apps ApplicationService) *EmployerHandler {
	return &EmployerHandler{postings: postings, apps: apps}
}

func (h *EmployerHandler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/api/employer", middleware.RequireRole(model.RoleEmployer, model.RoleCompany))
	g.Get("/internships", h.ListInternships)
	g.Post("/internships", h.CreateInternship)
	g.Put("/internships/:id", h.UpdateInternship)
	g.Delete("/internships/:id", h.DeleteInternship)
	g.Get("/applications-detailed", h.ListApplications)
	g.Get("/applications-detailed/:id", h.GetApplication)
	g.Patch("/applications-detailed/:id/status", h.UpdateApplicationStatus)
}

func (h *EmployerHandler) ListInternships(c *fiber.Ctx) error {
	postings, err := h.postings.ListByEmployer(c.UserContext(), middleware.CurrentIdentity(c).UserID)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to load internships", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Internships retrieved",
		Data:    fiber.Map{"internships": postings},
	})
}

func (h *EmployerHandler) CreateInternship(c *fiber.Ctx) error {
	var in dto.PostingPayload
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	p, err := h.postings.Create(c.UserContext(), middleware.CurrentIdentity(c).UserID, in)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to create internship", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Internship created successfully",
		Data:    p,
	})
}

func (h *EmployerHandler) UpdateInternship(c *fiber.Ctx) error {
	var in dto.PostingPayload
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	p, err := h.postings.Update(c.UserContext(), middleware.CurrentIdentity(c).UserID, c.Params("id"), in)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to update internship", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Internship updated successfully",
		Data:    p,
	})
}

func (h *EmployerHandler) DeleteInternship(c *fiber.Ctx) error {
	if err := h.postings.Delete(c.UserContext(), middleware.CurrentIdentity(c).UserID, c.Params("id")); err != nil {
		return util.AppErrorResponse(c, "Failed to delete internship", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Internship deleted successfully",
	})
}

func (h *EmployerHandler) ListApplications(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	filter := repository.ApplicationFilter{
		InternshipID: c.Query("internshipId"),
		Status:       c.Query("status"),
	}
	apps, total, err := h.apps.ListForEmployer(c.UserContext(), middleware.CurrentIdentity(c).UserID, filter, page, limit)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to load applications", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Applications retrieved",
		Data:       fiber.Map{"applications": apps},
		Pagination: response.NewPagination(page, limit, total),
	})
}

func (h *EmployerHandler) GetApplication(c *fiber.Ctx) error {
	app, err := h.apps.GetForEmployer(c.UserContext(), middleware.CurrentIdentity(c).UserID, c.Params("id"))
	if err != nil {
		return util.AppErrorResponse(c, "Failed to load application", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Application retrieved",
		Data:    app,
	})
}

func (h *EmployerHandler) UpdateApplicationStatus(c *fiber.Ctx) error {
	var req dto.ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	out, err := h.apps.UpdateStatus(c.UserContext(), middleware.CurrentIdentity(c).UserID, c.Params("id"), req)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to update application status", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Application status updated",
		Data:    out,
	})
}
