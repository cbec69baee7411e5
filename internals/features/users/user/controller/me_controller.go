package controller

import (
	"github.com/gofiber/fiber/v2"

	appDTO "ksms_backend/internals/features/school/applications/dto"
	appService "ksms_backend/internals/features/school/applications/service"
	subjectDTO "ksms_backend/internals/features/school/student_subjects/dto"
	subjectService "ksms_backend/internals/features/school/student_subjects/service"
	"ksms_backend/internals/features/users/user/dto"
	helper "ksms_backend/internals/helpers"
	helperAuth "ksms_backend/internals/helpers/auth"
)

type MeController struct {
	Subjects     *subjectService.UserSubjectService
	Applications *appService.ApplicationService
}

func NewMeController(subjects *subjectService.UserSubjectService, apps *appService.ApplicationService) *MeController {
	return &MeController{Subjects: subjects, Applications: apps}
}

type MeResponse struct {
	dto.UserResponse
	Subjects    []subjectDTO.SubjectGrade    `json:"subjects"`
	Application *appDTO.ApplicationResponse `json:"application"`
}

// GET /me
func (ctl *MeController) Me(c *fiber.Ctx) error {
	me, err := helperAuth.CurrentUser(c)
	if err != nil {
		return err
	}
	subjects, err := ctl.Subjects.ListForPrincipal(c.UserContext(), me.ID)
	if err != nil {
		return helper.FromError(c, err)
	}
	app, err := ctl.Applications.FindForApplicant(c.UserContext(), me.ID)
	if err != nil {
		return helper.FromError(c, err)
	}

	out := MeResponse{UserResponse: dto.FromModel(me), Subjects: subjects}
	if app != nil {
		res := appDTO.FromModel(app)
		out.Application = &res
	}
	return helper.JsonOK(c, "Profile fetched", out)
}
