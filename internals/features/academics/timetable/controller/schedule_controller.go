// file: internals/features/academics/timetable/controller/schedule_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	svc "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/service"
	helper "github.com/L20660042/Backend-Proy-sub000/internals/helpers"
	authMw "github.com/L20660042/Backend-Proy-sub000/internals/middlewares/auth"
	"github.com/L20660042/Backend-Proy-sub000/internals/constants"
)

// ScheduleController expone la vista semanal consolidada (solo lectura).
type ScheduleController struct {
	Schedules *svc.ScheduleService
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{Schedules: svc.NewScheduleService(db)}
}

/* =========================
   GET /horarios/docente/:period_id/:teacher_id
   ========================= */

func (ctl *ScheduleController) GetTeacherSchedule(c *fiber.Ctx) error {
	periodID, err := helper.ParseUUIDParam(c, "period_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	teacherID, err := helper.ParseUUIDParam(c, "teacher_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	blocks, err := ctl.Schedules.TeacherSchedule(periodID, teacherID)
	if err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "Horario del docente", blocks)
}

/* =========================
   GET /horarios/grupo/:period_id/:group_id
   ========================= */

func (ctl *ScheduleController) GetGroupSchedule(c *fiber.Ctx) error {
	periodID, err := helper.ParseUUIDParam(c, "period_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	groupID, err := helper.ParseUUIDParam(c, "group_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	blocks, err := ctl.Schedules.GroupSchedule(periodID, groupID)
	if err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "Horario del grupo", blocks)
}

/* =========================
   GET /horarios/alumno/:period_id/:student_id
   ========================= */

func (ctl *ScheduleController) GetStudentSchedule(c *fiber.Ctx) error {
	periodID, err := helper.ParseUUIDParam(c, "period_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	blocks, err := ctl.Schedules.StudentSchedule(periodID, studentID)
	if err != nil {
		if errors.Is(err, svc.ErrNoSchedule) {
			// distinto de "no encontrado": el alumno existe pero no está
			// inscrito en nada dentro del periodo
			return helper.JsonError(c, fiber.StatusNotFound, svc.ErrNoSchedule.Error())
		}
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "Horario del alumno", blocks)
}

/* =========================
   GET /horarios/mi-horario/:period_id
   El rol del token decide la vista: docente → horario de docente,
   alumno → horario de alumno. Cualquier otro rol se rechaza.
   ========================= */

func (ctl *ScheduleController) GetMySchedule(c *fiber.Ctx) error {
	periodID, err := helper.ParseUUIDParam(c, "period_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	switch authMw.GetRole(c) {
	case constants.RoleTeacher:
		teacherID, err := authMw.GetDocenteID(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		blocks, err := ctl.Schedules.TeacherSchedule(periodID, teacherID)
		if err != nil {
			status, msg := helper.MapPGError(err)
			return helper.JsonError(c, status, msg)
		}
		return helper.JsonOK(c, "Mi horario", blocks)

	case constants.RoleStudent:
		studentID, err := authMw.GetAlumnoID(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		blocks, err := ctl.Schedules.StudentSchedule(periodID, studentID)
		if err != nil {
			if errors.Is(err, svc.ErrNoSchedule) {
				return helper.JsonError(c, fiber.StatusNotFound, svc.ErrNoSchedule.Error())
			}
			status, msg := helper.MapPGError(err)
			return helper.JsonError(c, status, msg)
		}
		return helper.JsonOK(c, "Mi horario", blocks)

	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Tu rol no tiene horario personal")
	}
}
