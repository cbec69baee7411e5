package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/applications/controller"
	"ksms_backend/internals/features/school/applications/service"
	helperAuth "ksms_backend/internals/helpers/auth"
	authMiddleware "ksms_backend/internals/middlewares/auth"
)

func ApplicationRoutes(r fiber.Router, db *gorm.DB, strictTransitions bool) {
	ctl := controller.NewApplicationController(service.NewApplicationService(db, strictTransitions))
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("application management"), constants.RoleAdmin)
	activeStudent := authMiddleware.RequirePolicy(
		helperAuth.IsActiveStudent.WithMessage("Only active students can submit an application"),
	)

	g := r.Group("/application")
	g.Post("/", activeStudent, ctl.Create)
	g.Get("/", adminOnly, ctl.List)
	g.Get("/:id", ctl.Get)
	g.Patch("/:id/status", adminOnly, ctl.UpdateStatus)
	g.Patch("/:id/approve", adminOnly, ctl.SetStatusTo(constants.ApplicationApproved))
	g.Patch("/:id/reject", adminOnly, ctl.SetStatusTo(constants.ApplicationRejected))
	g.Patch("/:id/receive", adminOnly, ctl.SetStatusTo(constants.ApplicationReceived))
	g.Patch("/:id/pending", adminOnly, ctl.SetStatusTo(constants.ApplicationPending))
	g.Delete("/:id", adminOnly, ctl.Delete)
	g.Post("/:id/restore", adminOnly, ctl.Restore)
}
