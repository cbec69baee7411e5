package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"ksms_backend/internals/configs"
	callRoute "ksms_backend/internals/features/communication/calls/route"
	messageRoute "ksms_backend/internals/features/communication/messages/route"
)

// Conversations are mounted with the teacher group, see TeacherRoutes.
func CommunicationRoutes(r fiber.Router, db *gorm.DB, rdb *redis.Client, cfg *configs.Settings) {
	messageRoute.MessageRoutes(r, db)
	callRoute.CallRoutes(r, callRoute.NewRegistry(db, rdb, cfg))
}
