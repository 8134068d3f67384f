// file: internals/features/academics/enrollments/controller/course_enrollment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/dto"
	m "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/model"
	helper "github.com/L20660042/Backend-Proy-sub000/internals/helpers"
)

type CourseEnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseEnrollmentController(db *gorm.DB, v *validator.Validate) *CourseEnrollmentController {
	if v == nil {
		v = validator.New()
	}
	return &CourseEnrollmentController{DB: db, Validate: v}
}

func (ctl *CourseEnrollmentController) Create(c *fiber.Ctx) error {
	var req d.CreateCourseEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	row := req.ToModel()
	if err := ctl.DB.Create(&row).Error; err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Inscripción de curso registrada", row)
}

func (ctl *CourseEnrollmentController) ListByStudent(c *fiber.Ctx) error {
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

	var rows []m.CourseEnrollmentModel
	err = ctl.DB.
		Where("course_enrollment_period_id = ? AND course_enrollment_student_id = ?", *periodID, *studentID).
		Order("course_enrollment_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonList(c, "Inscripciones de curso", rows, paging)
}

func (ctl *CourseEnrollmentController) Deactivate(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.Model(&m.CourseEnrollmentModel{}).
		Where("course_enrollment_id = ? AND course_enrollment_active = TRUE", id).
		Update("course_enrollment_active", false)
	if res.Error != nil {
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Inscripción activa no encontrada")
	}
	return helper.JsonUpdated(c, "Inscripción dada de baja", fiber.Map{"course_enrollment_id": id})
}
