package controller

import (
	"github.com/gofiber/fiber/v2"

	"ksms_backend/internals/features/school/student_subjects/dto"
	"ksms_backend/internals/features/school/student_subjects/service"
	helper "ksms_backend/internals/helpers"
	helperAuth "ksms_backend/internals/helpers/auth"
)

type UserSubjectController struct {
	Svc *service.UserSubjectService
}

func NewUserSubjectController(svc *service.UserSubjectService) *UserSubjectController {
	return &UserSubjectController{Svc: svc}
}

// GET /student-subject
func (ctl *UserSubjectController) ListMine(c *fiber.Ctx) error {
	userID, err := helperAuth.CurrentUserID(c)
	if err != nil {
		return err
	}
	rows, err := ctl.Svc.ListForPrincipal(c.UserContext(), userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Subjects fetched", rows)
}

// POST /student-subject
func (ctl *UserSubjectController) Add(c *fiber.Ctx) error {
	userID, err := helperAuth.CurrentUserID(c)
	if err != nil {
		return err
	}
	var req dto.AddSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	row, err := ctl.Svc.Add(c.UserContext(), userID, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Subject added", row)
}

// POST /student-subject/bulk
// Accepts a bare JSON array or {"subjects": [...]}.
func (ctl *UserSubjectController) AddBulk(c *fiber.Ctx) error {
	userID, err := helperAuth.CurrentUserID(c)
	if err != nil {
		return err
	}
	var reqs []dto.AddSubjectRequest
	if err := c.BodyParser(&reqs); err != nil {
		var wrapped struct {
			Subjects []dto.AddSubjectRequest `json:"subjects"`
		}
		if err := c.BodyParser(&wrapped); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		reqs = wrapped.Subjects
	}
	if len(reqs) == 0 {
		return helper.FromError(c, helper.InvalidField("subjects", "is required"))
	}
	res, err := ctl.Svc.AddBulk(c.UserContext(), userID, reqs)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Subjects added", res)
}

// DELETE /student-subject/:subject_name
func (ctl *UserSubjectController) Remove(c *fiber.Ctx) error {
	userID, err := helperAuth.CurrentUserID(c)
	if err != nil {
		return err
	}
	if err := ctl.Svc.Remove(c.UserContext(), userID, c.Params("subject_name")); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Subject removed", nil)
}
