package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"ksms_backend/internals/configs"
	"ksms_backend/internals/features/communication/calls/controller"
	"ksms_backend/internals/features/communication/calls/service"
)

// NewRegistry picks Redis when a client is available, the active_calls table otherwise.
func NewRegistry(db *gorm.DB, rdb *redis.Client, cfg *configs.Settings) service.Registry {
	if rdb != nil {
		log.Println("[INFO] calls registry: redis")
		return service.NewRedisRegistry(rdb, cfg.CallTTL)
	}
	log.Println("[INFO] calls registry: database table")
	return service.NewTableRegistry(db, cfg.CallTTL)
}

func CallRoutes(r fiber.Router, reg service.Registry) {
	ctl := controller.NewCallController(reg)

	g := r.Group("/calls")
	g.Post("/initiate/:receiver_id", ctl.Initiate)
	g.Delete("/end/:receiver_id", ctl.End)
	g.Get("/:receiver_id", ctl.Active)
}
