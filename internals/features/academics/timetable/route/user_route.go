// file: internals/features/academics/timetable/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ttctl "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/controller"
)

// TimetableUserRoutes registra las vistas de horario para usuarios autenticados.
func TimetableUserRoutes(user fiber.Router, db *gorm.DB) {
	sched := ttctl.NewScheduleController(db)

	grp := user.Group("/horarios")
	grp.Get("/mi-horario/:period_id", sched.GetMySchedule)
	grp.Get("/docente/:period_id/:teacher_id", sched.GetTeacherSchedule)
	grp.Get("/grupo/:period_id/:group_id", sched.GetGroupSchedule)
	grp.Get("/alumno/:period_id/:student_id", sched.GetStudentSchedule)
}
