package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	appService "ksms_backend/internals/features/school/applications/service"
	subjectService "ksms_backend/internals/features/school/student_subjects/service"
	"ksms_backend/internals/features/users/user/controller"
	"ksms_backend/internals/features/users/user/service"
	authMiddleware "ksms_backend/internals/middlewares/auth"
)

func adminOnly(feature string) fiber.Handler {
	return authMiddleware.OnlyRoles(constants.RoleErrorAdmin(feature), constants.RoleAdmin)
}

// MeRoutes: GET /me with subjects and application.
func MeRoutes(r fiber.Router, db *gorm.DB, strictTransitions bool) {
	ctl := controller.NewMeController(
		subjectService.NewUserSubjectService(db),
		appService.NewApplicationService(db, strictTransitions),
	)
	r.Get("/me", ctl.Me)
}

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(service.NewUserService(db))
	admin := adminOnly("student management")

	r.Post("/deactivate_or_reactivate/:student_id", admin, ctl.ToggleActive)
	r.Post("/users/:id/restore", adminOnly("user management"), ctl.Restore)

	g := r.Group("/student")
	g.Patch("/me", ctl.UpdateMe)
	g.Get("/", admin, ctl.List)
	g.Get("/:id", admin, ctl.Get)
	g.Delete("/:id", admin, ctl.Delete)
}

// TeacherRoutes must be mounted after the other /teacher/* routes so /:id does not shadow them.
func TeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeacherController(service.NewUserService(db))
	admin := adminOnly("teacher management")

	teacher.Patch("/me", ctl.UpdateMe)
	teacher.Get("/", admin, ctl.List)
	teacher.Get("/:id", admin, ctl.Get)
	teacher.Delete("/:id", admin, ctl.Delete)
	teacher.Patch("/:id/check-in", ctl.CheckIn)
	teacher.Patch("/:id/check-out", ctl.CheckOut)
}
