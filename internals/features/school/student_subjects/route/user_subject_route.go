package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/student_subjects/controller"
	"ksms_backend/internals/features/school/student_subjects/service"
	authMiddleware "ksms_backend/internals/middlewares/auth"
)

func UserSubjectRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserSubjectController(service.NewUserSubjectService(db))

	g := r.Group("/student-subject")
	g.Get("/", authMiddleware.OnlyRoles(constants.RoleErrorStudent("their subject list"), constants.RoleStudent), ctl.ListMine)
	g.Post("/", ctl.Add)
	g.Post("/bulk", ctl.AddBulk)
	g.Delete("/:subject_name", ctl.Remove)
}
