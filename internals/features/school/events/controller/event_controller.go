package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/events/dto"
	"ksms_backend/internals/features/school/events/service"
	helper "ksms_backend/internals/helpers"
	helperAuth "ksms_backend/internals/helpers/auth"
)

type EventController struct {
	Svc *service.EventService
}

func NewEventController(svc *service.EventService) *EventController {
	return &EventController{Svc: svc}
}

// POST /event (form or JSON)
func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	e, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Event created", dto.FromModel(e))
}

// GET /event?from=YYYY-MM-DD&to=YYYY-MM-DD
func (ctl *EventController) List(c *fiber.Ctx) error {
	from, to := c.Query("from"), c.Query("to")
	for field, v := range map[string]string{"from": from, "to": to} {
		if v == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return helper.FromError(c, helper.InvalidField(field, "must be a date (YYYY-MM-DD)"))
		}
	}
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctl.Svc.List(c.UserContext(), p, from, to)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Events fetched", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /event/:id
func (ctl *EventController) Get(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	user, err := helperAuth.CurrentUser(c)
	if err != nil {
		return err
	}
	includeDeleted := c.QueryBool("include_deleted") && user.Role == constants.RoleAdmin
	e, err := ctl.Svc.Get(c.UserContext(), id, includeDeleted)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Event fetched", dto.FromModel(e))
}

// PATCH /event/:id
func (ctl *EventController) Update(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	e, err := ctl.Svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Event updated", dto.FromModel(e))
}

// DELETE /event/:id
func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	e, err := ctl.Svc.Delete(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Event deleted", dto.FromModel(e))
}

// POST /event/:id/restore
func (ctl *EventController) Restore(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	e, err := ctl.Svc.Restore(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Event restored", dto.FromModel(e))
}
