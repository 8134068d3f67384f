// file: internals/features/academics/enrollments/controller/activity_enrollment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/dto"
	m "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/model"
	svc "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/service"
	helper "github.com/L20660042/Backend-Proy-sub000/internals/helpers"
)

type ActivityEnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Guard    *svc.ActivityGuardService
}

func NewActivityEnrollmentController(db *gorm.DB, v *validator.Validate) *ActivityEnrollmentController {
	if v == nil {
		v = validator.New()
	}
	return &ActivityEnrollmentController{
		DB:       db,
		Validate: v,
		Guard:    svc.NewActivityGuardService(db),
	}
}

// enrollOne corre el guard y da de alta (o reactiva) la inscripción de un
// alumno. Regresa el status para el reporte por alumno del modo bulk.
func (ctl *ActivityEnrollmentController) enrollOne(periodID, studentID, activityID uuid.UUID) (string, error) {
	if err := ctl.Guard.ValidateActivityEnrollment(periodID, studentID, activityID); err != nil {
		return "", err
	}

	var existing m.ActivityEnrollmentModel
	err := ctl.DB.
		Where("activity_enrollment_period_id = ? AND activity_enrollment_student_id = ? AND activity_enrollment_activity_id = ?",
			periodID, studentID, activityID).
		First(&existing).Error
	switch {
	case err == nil:
		if existing.ActivityEnrollmentActive {
			return "", svc.ErrAlreadyEnrolled
		}
		// reactivación de una baja previa: mismo guard, misma fila
		err := ctl.DB.Model(&existing).
			Update("activity_enrollment_active", true).Error
		if err != nil {
			return "", err
		}
		return "reactivated", nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := m.ActivityEnrollmentModel{
			ActivityEnrollmentPeriodID:   periodID,
			ActivityEnrollmentStudentID:  studentID,
			ActivityEnrollmentActivityID: activityID,
			ActivityEnrollmentActive:     true,
		}
		// el índice único compuesto respalda la ventana entre guard y commit
		if err := ctl.DB.Create(&row).Error; err != nil {
			return "", err
		}
		return "inserted", nil
	default:
		return "", err
	}
}

func writeGuardError(c *fiber.Ctx, err error) error {
	var clash *svc.ScheduleConflictError
	if errors.As(err, &clash) {
		return helper.JsonError(c, fiber.StatusConflict, clash.Error())
	}
	if errors.Is(err, svc.ErrAlreadyEnrolled) {
		// conflicto de estado del cliente, no falla interna
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	if errors.Is(err, svc.ErrActivityWithoutSchedule) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	status, msg := helper.MapPGError(err)
	return helper.JsonError(c, status, msg)
}

/* =========================
   POST /inscripciones-actividad
   ========================= */

func (ctl *ActivityEnrollmentController) Enroll(c *fiber.Ctx) error {
	var req d.EnrollActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	status, err := ctl.enrollOne(
		req.ActivityEnrollmentPeriodID,
		req.ActivityEnrollmentStudentID,
		req.ActivityEnrollmentActivityID,
	)
	if err != nil {
		return writeGuardError(c, err)
	}
	return helper.JsonCreated(c, "Inscripción a actividad registrada", fiber.Map{"status": status})
}

/* =========================
   POST /inscripciones-actividad/bulk
   Cada alumno se procesa de forma independiente y en orden; un empalme de
   uno no revierte las altas exitosas de los demás.
   ========================= */

func (ctl *ActivityEnrollmentController) BulkEnroll(c *fiber.Ctx) error {
	var req d.BulkEnrollActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	results := bulkEnrollResults(req.StudentIDs, func(studentID uuid.UUID) (string, error) {
		return ctl.enrollOne(req.ActivityEnrollmentPeriodID, studentID, req.ActivityEnrollmentActivityID)
	})
	return helper.JsonOK(c, "Inscripción masiva procesada", results)
}

// bulkEnrollResults procesa a cada alumno en orden y de forma independiente:
// el fallo de uno se reporta en su renglón y no aborta ni revierte a los demás.
func bulkEnrollResults(studentIDs []uuid.UUID, enroll func(uuid.UUID) (string, error)) []d.BulkEnrollItemResult {
	results := make([]d.BulkEnrollItemResult, 0, len(studentIDs))
	for _, studentID := range studentIDs {
		status, err := enroll(studentID)
		if err != nil {
			results = append(results, d.BulkEnrollItemResult{
				StudentID: studentID,
				Status:    "error",
				Error:     err.Error(),
			})
			continue
		}
		results = append(results, d.BulkEnrollItemResult{StudentID: studentID, Status: status})
	}
	return results
}

/* =========================
   POST /inscripciones-actividad/:id/baja
   ========================= */

func (ctl *ActivityEnrollmentController) Deactivate(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.Model(&m.ActivityEnrollmentModel{}).
		Where("activity_enrollment_id = ? AND activity_enrollment_active = TRUE", id).
		Update("activity_enrollment_active", false)
	if res.Error != nil {
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Inscripción activa no encontrada")
	}
	return helper.JsonUpdated(c, "Inscripción dada de baja", fiber.Map{"activity_enrollment_id": id})
}

/* =========================
   GET /inscripciones-actividad?period_id=&student_id=
   ========================= */

func (ctl *ActivityEnrollmentController) ListByStudent(c *fiber.Ctx) error {
	periodID, err := helper.ParseUUIDQuery(c, "period_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	studentID, err := helper.ParseUUIDQuery(c, "student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if periodID == nil || studentID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "period_id y student_id son requeridos")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var rows []m.ActivityEnrollmentModel
	err = ctl.DB.
		Where("activity_enrollment_period_id = ? AND activity_enrollment_student_id = ?", *periodID, *studentID).
		Order("activity_enrollment_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonList(c, "Inscripciones a actividades", rows, paging)
}
