package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/communication/messages/controller"
	"ksms_backend/internals/features/communication/messages/service"
	authMiddleware "ksms_backend/internals/middlewares/auth"
)

func MessageRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewMessageController(service.NewMessageService(db))
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("message management"), constants.RoleAdmin)

	g := r.Group("/message")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Patch("/:id/status", ctl.UpdateStatus)
	g.Post("/", adminOnly, ctl.Create)
	g.Patch("/:id", adminOnly, ctl.Update)
	g.Delete("/:id", adminOnly, ctl.Delete)
	g.Post("/:id/restore", adminOnly, ctl.Restore)
}
