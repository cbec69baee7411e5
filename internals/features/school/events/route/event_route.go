package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/events/controller"
	"ksms_backend/internals/features/school/events/service"
	authMiddleware "ksms_backend/internals/middlewares/auth"
)

func EventRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewEventController(service.NewEventService(db))
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("event management"), constants.RoleAdmin)

	g := r.Group("/event")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Post("/", adminOnly, ctl.Create)
	g.Patch("/:id", adminOnly, ctl.Update)
	g.Delete("/:id", adminOnly, ctl.Delete)
	g.Post("/:id/restore", adminOnly, ctl.Restore)
}
