package handler

import (
	"io"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/middleware"
	"github.com/fadilmartias/skillsyncer/internal/model"
	"github.com/fadilmartias/skillsyncer/internal/response"
	"github.com/fadilmartias/skillsyncer/internal/submission"
	"github.com/fadilmartias/skillsyncer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobseekerHandler struct {
	profiles ProfileService
	postings PostingService
	apps     ApplicationService
}

func NewJobseekerHandler(profiles ProfileService, postings PostingService, apps ApplicationService) *JobseekerHandler {
	return &JobseekerHandler{profiles: profiles, postings: postings, apps: apps}
}

func (h *JobseekerHandler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/api/jobseeker", middleware.RequireRole(model.RoleJobseeker))
	g.Get("/profile", h.GetProfile)
	g.Put("/profile", h.UpdateProfile)
	g.Get("/profile-suggestions", h.ProfileSuggestions)
	g.Post("/upload-resume", middleware.RateLimiter(10, time.Minute), h.UploadResume)
	g.Get("/internships", h.ListInternships)
	g.Get("/internships/recommended", h.RecommendedInternships)
	g.Get("/internships/:id", h.GetInternship)
	g.Post("/internships/:id/apply-detailed", middleware.RateLimiter(5, time.Minute), h.ApplyDetailed)
	g.Get("/applications-detailed", h.ListApplications)
}

func (h *JobseekerHandler) GetProfile(c *fiber.Ctx) error {
	view, err := h.profiles.GetProfile(c.UserContext(), middleware.CurrentIdentity(c).UserID)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to load profile", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Profile retrieved",
		Data:    view,
	})
}

func (h *JobseekerHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	view, err := h.profiles.UpdateProfile(c.UserContext(), middleware.CurrentIdentity(c).UserID, req)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to update profile", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Profile updated successfully",
		Data:    view,
	})
}

func (h *JobseekerHandler) ProfileSuggestions(c *fiber.Ctx) error {
	out, err := h.profiles.Suggestions(c.UserContext(), middleware.CurrentIdentity(c).UserID)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to load profile suggestions", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Profile suggestions generated",
		Data:    out,
	})
}

func (h *JobseekerHandler) UploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Please select a resume file",
		}, err)
	}
	if file.Size > submission.MaxResumeBytes {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "File size must be less than 5MB",
		})
	}
	f, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Cannot read resume file"}, err)
	}
	defer f.Close()
	content, err := io.ReadAll(io.LimitReader(f, submission.MaxResumeBytes+1))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Cannot read resume file"}, err)
	}

	// The declared multipart type is not trusted; the content is sniffed.
	out, err := h.profiles.UploadResume(c.UserContext(), middleware.CurrentIdentity(c).UserID, submission.ResumeFile{
		Name:    file.Filename,
		Content: content,
	})
	if err != nil {
		return util.AppErrorResponse(c, "Failed to upload resume", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Resume uploaded successfully",
		Data:    out,
	})
}

func (h *JobseekerHandler) ListInternships(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	filter := dto.PostingFilter{
		Industry: c.Query("industry"),
		Location: c.Query("location"),
		Mode:     c.Query("mode"),
		Skills:   splitList(c.Query("skills")),
	}
	postings, total, err := h.postings.ListOpen(c.UserContext(), filter, page, limit)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to load internships", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Internships retrieved",
		Data:       fiber.Map{"internships": postings},
		Pagination: response.NewPagination(page, limit, total),
	})
}

func (h *JobseekerHandler) RecommendedInternships(c *fiber.Ctx) error {
	postings, err := h.postings.Recommended(c.UserContext(), middleware.CurrentIdentity(c).UserID, c.QueryInt("limit", 10))
	if err != nil {
		return util.AppErrorResponse(c, "Failed to load recommendations", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Recommended internships retrieved",
		Data:    fiber.Map{"internships": postings},
	})
}

func (h *JobseekerHandler) GetInternship(c *fiber.Ctx) error {
	p, err := h.postings.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return util.AppErrorResponse(c, "Failed to load internship", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Internship retrieved",
		Data:    p,
	})
}

func (h *JobseekerHandler) ApplyDetailed(c *fiber.Ctx) error {
	var payload dto.ApplicationPayload
	if err := c.BodyParser(&payload); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	app, err := h.apps.Apply(c.UserContext(), middleware.CurrentIdentity(c).UserID, c.Params("id"), payload)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to submit application", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Application submitted successfully",
		Data:    app,
	})
}

func (h *JobseekerHandler) ListApplications(c *fiber.Ctx) error {
	apps, err := h.apps.ListForJobseeker(c.UserContext(), middleware.CurrentIdentity(c).UserID)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to load applications", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Applications retrieved",
		Data:    fiber.Map{"applications": apps},
	})
}
