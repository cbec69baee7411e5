package controller

import (
	"github.com/gofiber/fiber/v2"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/communication/messages/dto"
	"ksms_backend/internals/features/communication/messages/service"
	helper "ksms_backend/internals/helpers"
	helperAuth "ksms_backend/internals/helpers/auth"
)

type MessageController struct {
	Svc *service.MessageService
}

func NewMessageController(svc *service.MessageService) *MessageController {
	return &MessageController{Svc: svc}
}

// POST /message
func (ctl *MessageController) Create(c *fiber.Ctx) error {
	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	m, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Message sent", dto.FromModel(m))
}

// GET /message
func (ctl *MessageController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctl.Svc.List(c.UserContext(), p)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Messages fetched", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /message/:id
func (ctl *MessageController) Get(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	user, err := helperAuth.CurrentUser(c)
	if err != nil {
		return err
	}
	includeDeleted := c.QueryBool("include_deleted") && user.Role == constants.RoleAdmin
	m, err := ctl.Svc.Get(c.UserContext(), id, includeDeleted)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Message fetched", dto.FromModel(m))
}

// PATCH /message/:id
func (ctl *MessageController) Update(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	m, err := ctl.Svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Message updated", dto.FromModel(m))
}

// PATCH /message/:id/status
func (ctl *MessageController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateMessageStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	m, err := ctl.Svc.SetStatus(c.UserContext(), id, constants.MessageStatus(req.Status))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Message status updated", dto.FromModel(m))
}

// DELETE /message/:id
func (ctl *MessageController) Delete(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.Svc.Delete(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Message deleted", dto.FromModel(m))
}

// POST /message/:id/restore
func (ctl *MessageController) Restore(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.Svc.Restore(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Message restored", dto.FromModel(m))
}
