package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/subjects/controller"
	"ksms_backend/internals/features/school/subjects/service"
	authMiddleware "ksms_backend/internals/middlewares/auth"
)

// SubjectRoutes expects r to already run the session middleware.
func SubjectRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(service.NewSubjectService(db))
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("subject management"), constants.RoleAdmin)

	g := r.Group("/subjects")
	g.Get("/", ctl.List)
	g.Get("/:id", adminOnly, ctl.Get)
	g.Post("/", adminOnly, ctl.Create)
	g.Post("/bulk", adminOnly, ctl.CreateMany)
	g.Patch("/:id", adminOnly, ctl.Update)
	g.Delete("/:id", adminOnly, ctl.Delete)
	g.Post("/:id/restore", adminOnly, ctl.Restore)
}
