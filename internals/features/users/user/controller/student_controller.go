package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/users/user/dto"
	"ksms_backend/internals/features/users/user/service"
	helper "ksms_backend/internals/helpers"
	helperAuth "ksms_backend/internals/helpers/auth"
)

type StudentController struct {
	Users *service.UserService
}

func NewStudentController(users *service.UserService) *StudentController {
	return &StudentController{Users: users}
}

// GET /student?q=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctl.Users.ListByRole(c.UserContext(), constants.RoleStudent, p, c.Query("q"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Students fetched", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /student/:id
func (ctl *StudentController) Get(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	u, err := ctl.Users.GetByRole(c.UserContext(), id, constants.RoleStudent, c.QueryBool("include_deleted"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Student fetched", dto.FromModel(u))
}

// PATCH /student/me
func (ctl *StudentController) UpdateMe(c *fiber.Ctx) error {
	me, err := helperAuth.CurrentUser(c)
	if err != nil {
		return err
	}
	var patch dto.StudentUpdate
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	u, err := ctl.Users.UpdateStudent(c.UserContext(), me.ID, patch)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Profile updated", dto.FromModel(u))
}

// DELETE /student/:id
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	u, err := ctl.Users.DeleteByRole(c.UserContext(), id, constants.RoleStudent)
	if err != nil {
		return helper.FromError(c, err)
	}
	log.Printf("[INFO] student %s deleted", u.Email)
	return helper.JsonDeleted(c, "Student deleted", dto.FromModel(u))
}

// POST /deactivate_or_reactivate/:student_id
func (ctl *StudentController) ToggleActive(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "student_id")
	if err != nil {
		return helper.FromError(c, err)
	}
	u, err := ctl.Users.ToggleActive(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	msg := "Student deactivated"
	if u.IsActive {
		msg = "Student reactivated"
	}
	log.Printf("[INFO] %s: %s", msg, u.Email)
	return helper.JsonUpdated(c, msg, dto.FromModel(u))
}

// POST /users/:id/restore
func (ctl *StudentController) Restore(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	u, err := ctl.Users.Restore(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "User restored", dto.FromModel(u))
}
