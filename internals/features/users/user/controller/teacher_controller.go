package controller

import (
	"github.com/gofiber/fiber/v2"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/users/user/dto"
	"ksms_backend/internals/features/users/user/service"
	helper "ksms_backend/internals/helpers"
	helperAuth "ksms_backend/internals/helpers/auth"
)

type TeacherController struct {
	Users *service.UserService
}

func NewTeacherController(users *service.UserService) *TeacherController {
	return &TeacherController{Users: users}
}

// GET /teacher?q=
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctl.Users.ListByRole(c.UserContext(), constants.RoleTeacher, p, c.Query("q"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Teachers fetched", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /teacher/:id
func (ctl *TeacherController) Get(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	u, err := ctl.Users.GetByRole(c.UserContext(), id, constants.RoleTeacher, c.QueryBool("include_deleted"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Teacher fetched", dto.FromModel(u))
}

// PATCH /teacher/me
func (ctl *TeacherController) UpdateMe(c *fiber.Ctx) error {
	me, err := helperAuth.CurrentUser(c)
	if err != nil {
		return err
	}
	var patch dto.TeacherUpdate
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	u, err := ctl.Users.UpdateTeacher(c.UserContext(), me.ID, patch)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Profile updated", dto.FromModel(u))
}

// DELETE /teacher/:id
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	u, err := ctl.Users.DeleteByRole(c.UserContext(), id, constants.RoleTeacher)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Teacher deleted", dto.FromModel(u))
}

// PATCH /teacher/:id/check-in
func (ctl *TeacherController) CheckIn(c *fiber.Ctx) error { return ctl.setCheckedOut(c, false) }

// PATCH /teacher/:id/check-out
func (ctl *TeacherController) CheckOut(c *fiber.Ctx) error { return ctl.setCheckedOut(c, true) }

func (ctl *TeacherController) setCheckedOut(c *fiber.Ctx, out bool) error {
	me, err := helperAuth.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if _, err := helperAuth.Require(me, helperAuth.IsSelfOrAdmin(id)); err != nil {
		return helper.FromError(c, err)
	}
	u, err := ctl.Users.SetCheckedOut(c.UserContext(), id, out)
	if err != nil {
		return helper.FromError(c, err)
	}
	msg := "Teacher checked in successfully"
	if out {
		msg = "Teacher checked out successfully"
	}
	return helper.JsonUpdated(c, msg, dto.FromModel(u))
}
