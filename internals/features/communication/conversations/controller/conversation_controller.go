package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/communication/conversations/dto"
	"ksms_backend/internals/features/communication/conversations/service"
	helper "ksms_backend/internals/helpers"
	helperAuth "ksms_backend/internals/helpers/auth"
)

type ConversationController struct {
	Svc *service.ConversationService
}

func NewConversationController(svc *service.ConversationService) *ConversationController {
	return &ConversationController{Svc: svc}
}

/* ===================== TEACHER ===================== */

// POST /teacher/messages
func (ctl *ConversationController) SendToAdmin(c *fiber.Ctx) error {
	teacherID, err := helperAuth.CurrentUserID(c)
	if err != nil {
		return err
	}
	var req dto.SendRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	msg, err := ctl.Svc.SendToAdmin(c.UserContext(), teacherID, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Message sent to admin", dto.FromMessage(msg))
}

// GET /teacher/messages
func (ctl *ConversationController) MyHistory(c *fiber.Ctx) error {
	teacherID, err := helperAuth.CurrentUserID(c)
	if err != nil {
		return err
	}
	return ctl.history(c, teacherID, nil)
}

// GET /teacher/replies
func (ctl *ConversationController) MyReplies(c *fiber.Ctx) error {
	teacherID, err := helperAuth.CurrentUserID(c)
	if err != nil {
		return err
	}
	admin := constants.SenderAdmin
	return ctl.history(c, teacherID, &admin)
}

/* ===================== ADMIN ===================== */

// GET /conversations
func (ctl *ConversationController) Inbox(c *fiber.Ctx) error {
	rows, err := ctl.Svc.Inbox(c.UserContext())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Conversations fetched", rows)
}

// GET /conversations/:teacher_id
func (ctl *ConversationController) History(c *fiber.Ctx) error {
	teacherID, err := helperAuth.ParseIDParam(c, "teacher_id")
	if err != nil {
		return helper.FromError(c, err)
	}
	return ctl.history(c, teacherID, nil)
}

// POST /conversations/:teacher_id/reply
func (ctl *ConversationController) Reply(c *fiber.Ctx) error {
	teacherID, err := helperAuth.ParseIDParam(c, "teacher_id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.SendRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	msg, err := ctl.Svc.Reply(c.UserContext(), teacherID, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Reply sent", dto.FromMessage(msg))
}

func (ctl *ConversationController) history(c *fiber.Ctx, teacherID uuid.UUID, sender *constants.ChatSender) error {
	p := helper.ResolvePaging(c, 50, helper.MaxPerPage)
	rows, total, err := ctl.Svc.History(c.UserContext(), teacherID, sender, p)
	if err != nil {
		return helper.FromError(c, err)
	}
	body := dto.HistoryResponse{TeacherID: teacherID, Messages: dto.FromMessages(rows)}
	pg := helper.BuildPagination(total, p)
	pg.Count = len(rows)
	return helper.JsonList(c, "Chat history fetched", body, pg)
}
