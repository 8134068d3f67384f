// file: internals/features/academics/enrollments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrctl "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/controller"
)

// EnrollmentAdminRoutes registra la gestión de inscripciones (solo admin).
func EnrollmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	courses := enrctl.NewCourseEnrollmentController(db, nil)
	activities := enrctl.NewActivityEnrollmentController(db, nil)

	grpCourses := admin.Group("/inscripciones-curso")
	grpCourses.Post("/", courses.Create)
	grpCourses.Get("/", courses.ListByStudent)
	grpCourses.Post("/:id/baja", courses.Deactivate)

	grpActivities := admin.Group("/inscripciones-actividad")
	grpActivities.Post("/", activities.Enroll)
	grpActivities.Post("/bulk", activities.BulkEnroll)
	grpActivities.Get("/", activities.ListByStudent)
	grpActivities.Post("/:id/baja", activities.Deactivate)
}
