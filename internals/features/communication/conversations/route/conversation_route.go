package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/communication/conversations/controller"
	"ksms_backend/internals/features/communication/conversations/service"
	authMiddleware "ksms_backend/internals/middlewares/auth"
)

// ConversationRoutes mounts the teacher side under teacher and the admin side under r.
func ConversationRoutes(r fiber.Router, teacher fiber.Router, db *gorm.DB) {
	ctl := controller.NewConversationController(service.NewConversationService(db))
	teacherOnly := authMiddleware.OnlyRoles(constants.RoleErrorTeacher("the admin chat"), constants.RoleTeacher)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("teacher conversations"), constants.RoleAdmin)

	teacher.Post("/messages", teacherOnly, ctl.SendToAdmin)
	teacher.Get("/messages", teacherOnly, ctl.MyHistory)
	teacher.Get("/replies", teacherOnly, ctl.MyReplies)

	g := r.Group("/conversations", adminOnly)
	g.Get("/", ctl.Inbox)
	g.Get("/:teacher_id", ctl.History)
	g.Post("/:teacher_id/reply", ctl.Reply)
}
