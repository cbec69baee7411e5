package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ksms_backend/internals/configs"
	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/files/controller"
	"ksms_backend/internals/features/school/files/service"
	authMiddleware "ksms_backend/internals/middlewares/auth"
)

// FileRoutes mounts upload/download under the /teacher group.
func FileRoutes(teacher fiber.Router, db *gorm.DB, cfg *configs.Settings) {
	ctl := controller.NewFileController(service.NewFileService(db, service.Options{
		Dir:          cfg.UploadDir,
		MaxBytes:     cfg.UploadMaxBytes,
		ImageToWebP:  cfg.UploadImageToWebP,
		ImageMaxWide: cfg.UploadImageMaxWidth,
	}))

	teacher.Post("/upload", ctl.Upload)
	teacher.Get("/files", ctl.List)
	teacher.Get("/download/:filename", ctl.Download)
	teacher.Delete("/files/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("file deletion"), constants.RoleAdmin),
		ctl.Delete,
	)
}
