package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/applications/dto"
	"ksms_backend/internals/features/school/applications/service"
	helper "ksms_backend/internals/helpers"
	helperAuth "ksms_backend/internals/helpers/auth"
)

type ApplicationController struct {
	Svc *service.ApplicationService
}

func NewApplicationController(svc *service.ApplicationService) *ApplicationController {
	return &ApplicationController{Svc: svc}
}

// POST /application
func (ctl *ApplicationController) Create(c *fiber.Ctx) error {
	user, err := helperAuth.CurrentUser(c)
	if err != nil {
		return err
	}
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	app, err := ctl.Svc.Create(c.UserContext(), user, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	log.Printf("[INFO] application %s submitted by %s", app.ID, user.Email)
	return helper.JsonCreated(c, "Application submitted", dto.FromModel(app))
}

// GET /application
func (ctl *ApplicationController) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctl.Svc.List(c.UserContext(), p, q)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Applications fetched", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /application/:id
func (ctl *ApplicationController) Get(c *fiber.Ctx) error {
	user, err := helperAuth.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	includeDeleted := c.QueryBool("include_deleted") && user.Role == constants.RoleAdmin
	app, err := ctl.Svc.Get(c.UserContext(), id, includeDeleted)
	if err != nil {
		return helper.FromError(c, err)
	}
	if _, err := helperAuth.Require(user, helperAuth.IsSelfOrAdmin(app.ApplicantID).WithMessage("You can only view your own application")); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Application fetched", dto.FromModel(app))
}

// PATCH /application/:id/status
func (ctl *ApplicationController) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.FromError(c, err)
	}
	return ctl.setStatus(c, constants.ApplicationStatus(req.Status))
}

// SetStatusTo backs the /approve, /reject, /receive and /pending shortcuts.
func (ctl *ApplicationController) SetStatusTo(status constants.ApplicationStatus) fiber.Handler {
	return func(c *fiber.Ctx) error { return ctl.setStatus(c, status) }
}

func (ctl *ApplicationController) setStatus(c *fiber.Ctx, status constants.ApplicationStatus) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	app, err := ctl.Svc.SetStatus(c.UserContext(), id, status)
	if err != nil {
		return helper.FromError(c, err)
	}
	log.Printf("[INFO] application %s status -> %s", app.ID, app.Status)
	return helper.JsonUpdated(c, "Application status updated", dto.FromModel(app))
}

// DELETE /application/:id
func (ctl *ApplicationController) Delete(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	app, err := ctl.Svc.Delete(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Application deleted", dto.FromModel(app))
}

// POST /application/:id/restore
func (ctl *ApplicationController) Restore(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	app, err := ctl.Svc.Restore(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Application restored", dto.FromModel(app))
}
