package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ksms_backend/internals/features/communication/calls/service"
	helper "ksms_backend/internals/helpers"
	helperAuth "ksms_backend/internals/helpers/auth"
)

type CallController struct {
	Registry service.Registry
}

func NewCallController(reg service.Registry) *CallController {
	return &CallController{Registry: reg}
}

type initiateRequest struct {
	CallerID string `json:"caller_id" form:"caller_id"`
}

// POST /calls/initiate/:receiver_id
// caller_id defaults to the signed-in user.
func (ctl *CallController) Initiate(c *fiber.Ctx) error {
	var req initiateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}
	if strings.TrimSpace(req.CallerID) == "" {
		id, err := helperAuth.CurrentUserID(c)
		if err != nil {
			return err
		}
		req.CallerID = id.String()
	}

	call, err := ctl.Registry.Initiate(c.UserContext(), c.Params("receiver_id"), req.CallerID)
	if err != nil {
		return helper.FromError(c, err)
	}
	log.Printf("[INFO] call initiated from %s to %s", call.CallerID, call.ReceiverID)
	return helper.JsonCreated(c, "Call initiated successfully", call)
}

// DELETE /calls/end/:receiver_id
func (ctl *CallController) End(c *fiber.Ctx) error {
	receiver := c.Params("receiver_id")
	if err := ctl.Registry.End(c.UserContext(), receiver); err != nil {
		return helper.FromError(c, err)
	}
	log.Printf("[INFO] call ended for %s", receiver)
	return helper.JsonDeleted(c, "Call ended successfully", nil)
}

// GET /calls/:receiver_id
func (ctl *CallController) Active(c *fiber.Ctx) error {
	call, err := ctl.Registry.Active(c.UserContext(), c.Params("receiver_id"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Active call", call)
}
