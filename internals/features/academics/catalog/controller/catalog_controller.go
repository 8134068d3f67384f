// file: internals/features/academics/catalog/controller/catalog_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/catalog/dto"
	m "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/catalog/model"
	helper "github.com/L20660042/Backend-Proy-sub000/internals/helpers"
)

// CatalogController: altas y consultas del catálogo académico (periodos,
// carreras, grupos, materias, actividades, asignaciones de clase). CRUD plano,
// sin reglas de negocio; las reglas viven en timetable y enrollments.
type CatalogController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCatalogController(db *gorm.DB, v *validator.Validate) *CatalogController {
	if v == nil {
		v = validator.New()
	}
	return &CatalogController{DB: db, Validate: v}
}

func createRow[T any](ctl *CatalogController, c *fiber.Ctx, req interface{ ToModel() T }, msg string) error {
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	row := req.ToModel()
	if err := ctl.DB.Create(&row).Error; err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, msg, row)
}

/* ========== Periodos ========== */

func (ctl *CatalogController) CreatePeriod(c *fiber.Ctx) error {
	var req d.CreatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición inválido")
	}
	return createRow(ctl, c, req, "Periodo creado")
}

func (ctl *CatalogController) ListPeriods(c *fiber.Ctx) error {
	var rows []m.PeriodModel
	if err := ctl.DB.Order("period_name ASC").Find(&rows).Error; err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonList(c, "Periodos", rows, nil)
}

/* ========== Carreras ========== */

func (ctl *CatalogController) CreateCareer(c *fiber.Ctx) error {
	var req d.CreateCareerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición inválido")
	}
	return createRow(ctl, c, req, "Carrera creada")
}

func (ctl *CatalogController) ListCareers(c *fiber.Ctx) error {
	var rows []m.CareerModel
	if err := ctl.DB.Order("career_name ASC").Find(&rows).Error; err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonList(c, "Carreras", rows, nil)
}

/* ========== Grupos ========== */

func (ctl *CatalogController) CreateGroup(c *fiber.Ctx) error {
	var req d.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición inválido")
	}
	return createRow(ctl, c, req, "Grupo creado")
}

func (ctl *CatalogController) ListGroups(c *fiber.Ctx) error {
	periodID, err := helper.ParseUUIDQuery(c, "period_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	q := ctl.DB.Order("group_name ASC")
	if periodID != nil {
		q = q.Where("group_period_id = ?", *periodID)
	}
	var rows []m.GroupModel
	if err := q.Find(&rows).Error; err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonList(c, "Grupos", rows, nil)
}

/* ========== Materias ========== */

func (ctl *CatalogController) CreateSubject(c *fiber.Ctx) error {
	var req d.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición inválido")
	}
	return createRow(ctl, c, req, "Materia creada")
}

func (ctl *CatalogController) ListSubjects(c *fiber.Ctx) error {
	careerID, err := helper.ParseUUIDQuery(c, "career_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	q := ctl.DB.Order("subject_name ASC")
	if careerID != nil {
		q = q.Where("subject_career_id = ?", *careerID)
	}
	var rows []m.SubjectModel
	if err := q.Find(&rows).Error; err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonList(c, "Materias", rows, nil)
}

/* ========== Actividades ========== */

func (ctl *CatalogController) CreateActivity(c *fiber.Ctx) error {
	var req d.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición inválido")
	}
	return createRow(ctl, c, req, "Actividad creada")
}

func (ctl *CatalogController) ListActivities(c *fiber.Ctx) error {
	periodID, err := helper.ParseUUIDQuery(c, "period_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	q := ctl.DB.Order("activity_name ASC")
	if periodID != nil {
		q = q.Where("activity_period_id = ?", *periodID)
	}
	var rows []m.ActivityModel
	if err := q.Find(&rows).Error; err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonList(c, "Actividades", rows, nil)
}

/* ========== Asignaciones de clase ========== */

func (ctl *CatalogController) CreateClassAssignment(c *fiber.Ctx) error {
	var req d.CreateClassAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición inválido")
	}
	return createRow(ctl, c, req, "Asignación de clase creada")
}

func (ctl *CatalogController) ListClassAssignments(c *fiber.Ctx) error {
	periodID, err := helper.ParseUUIDQuery(c, "period_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	q := ctl.DB.Order("class_assignment_created_at ASC")
	if periodID != nil {
		q = q.Where("class_assignment_period_id = ?", *periodID)
	}
	var rows []m.ClassAssignmentModel
	if err := q.Find(&rows).Error; err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonList(c, "Asignaciones de clase", rows, nil)
}
