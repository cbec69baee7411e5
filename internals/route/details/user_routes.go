package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ksms_backend/internals/configs"
	fileRoute "ksms_backend/internals/features/school/files/route"
	conversationRoute "ksms_backend/internals/features/communication/conversations/route"
	userRoute "ksms_backend/internals/features/users/user/route"
)

func UserRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Settings) {
	userRoute.MeRoutes(r, db, cfg.StrictApplicationTransitions)
	userRoute.StudentRoutes(r, db)
}

// TeacherRoutes: files and chat first, then the /teacher/:id handlers.
func TeacherRoutes(r fiber.Router, teacher fiber.Router, db *gorm.DB, cfg *configs.Settings) {
	fileRoute.FileRoutes(teacher, db, cfg)
	conversationRoute.ConversationRoutes(r, teacher, db)
	userRoute.TeacherRoutes(teacher, db)
}
