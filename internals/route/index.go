package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"ksms_backend/internals/configs"
	authService "ksms_backend/internals/features/users/auth/service"
	userRepo "ksms_backend/internals/features/users/user/repository"
	authMiddleware "ksms_backend/internals/middlewares/auth"
	routeDetails "ksms_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes mounts public routes first; everything after the auth group requires a session.
func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client, cfg *configs.Settings) error {
	startTime = time.Now()

	tokens, err := authService.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		return err
	}
	users := userRepo.NewUserRepository(db)
	authCtl := routeDetails.NewAuthController(db, tokens, cfg)

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up public AuthRoutes...")
	routeDetails.AuthPublicRoutes(app, authCtl)

	log.Println("[INFO] Setting up authenticated group...")
	private := app.Group("", authMiddleware.AuthMiddleware(authService.NewSessionResolver(tokens, users)))

	routeDetails.AuthUserRoutes(private, authCtl)
	routeDetails.UserRoutes(private, db, cfg)
	routeDetails.SchoolRoutes(private, db, cfg)
	routeDetails.CommunicationRoutes(private, db, rdb, cfg)

	// /teacher/:id must come after the literal /teacher/* paths.
	teacher := private.Group("/teacher")
	routeDetails.TeacherRoutes(private, teacher, db, cfg)

	log.Println("[INFO] routes ready")
	return nil
}
