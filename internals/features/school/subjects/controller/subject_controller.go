package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"ksms_backend/internals/features/school/subjects/dto"
	"ksms_backend/internals/features/school/subjects/service"
	helper "ksms_backend/internals/helpers"
	helperAuth "ksms_backend/internals/helpers/auth"
)

type SubjectController struct {
	Subjects *service.SubjectService
}

func NewSubjectController(subjects *service.SubjectService) *SubjectController {
	return &SubjectController{Subjects: subjects}
}

// GET /subjects
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, helper.MaxPerPage)
	rows, total, err := ctl.Subjects.List(c.UserContext(), p)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Subjects fetched", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /subjects/:id
func (ctl *SubjectController) Get(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.Subjects.Get(c.UserContext(), id, c.QueryBool("include_deleted"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Subject fetched", dto.FromModel(m))
}

// POST /subjects
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	m, err := ctl.Subjects.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	log.Printf("[INFO] subject %s created (%s)", m.Name, m.ID)
	return helper.JsonCreated(c, "Subject created", dto.FromModel(m))
}

// POST /subjects/bulk
func (ctl *SubjectController) CreateMany(c *fiber.Ctx) error {
	var req dto.BulkCreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	rows, err := ctl.Subjects.CreateMany(c.UserContext(), req.Subjects)
	if err != nil {
		return helper.FromError(c, err)
	}
	log.Printf("[INFO] %d subjects created", len(rows))
	return helper.JsonCreated(c, "Subjects created", dto.FromModels(rows))
}

// PATCH /subjects/:id
func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	m, err := ctl.Subjects.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Subject updated", dto.FromModel(m))
}

// DELETE /subjects/:id
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.Subjects.Delete(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Subject deleted", dto.FromModel(m))
}

// POST /subjects/:id/restore
func (ctl *SubjectController) Restore(c *fiber.Ctx) error {
	id, err := helperAuth.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.Subjects.Restore(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Subject restored", dto.FromModel(m))
}
