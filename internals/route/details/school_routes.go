package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ksms_backend/internals/configs"
	applicationRoute "ksms_backend/internals/features/school/applications/route"
	eventRoute "ksms_backend/internals/features/school/events/route"
	userSubjectRoute "ksms_backend/internals/features/school/student_subjects/route"
	subjectRoute "ksms_backend/internals/features/school/subjects/route"
)

func SchoolRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Settings) {
	subjectRoute.SubjectRoutes(r, db)
	userSubjectRoute.UserSubjectRoutes(r, db)
	applicationRoute.ApplicationRoutes(r, db, cfg.StrictApplicationTransitions)
	eventRoute.EventRoutes(r, db)
}
