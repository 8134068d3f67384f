// file: internals/features/academics/timetable/controller/timetable_block_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/dto"
	m "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/model"
	svc "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/service"
	helper "github.com/L20660042/Backend-Proy-sub000/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimetableBlockController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Conflict *svc.ConflictService
}

func New(db *gorm.DB, v *validator.Validate) *TimetableBlockController {
	if v == nil {
		v = validator.New()
	}
	return &TimetableBlockController{
		DB:       db,
		Validate: v,
		Conflict: svc.NewConflictService(db),
	}
}

// writeConflictOrError distingue el rechazo por empalme (409) de un error real.
func writeConflictOrError(c *fiber.Ctx, err error) error {
	var conflict *svc.ConflictError
	if errors.As(err, &conflict) {
		return helper.JsonError(c, fiber.StatusConflict, conflict.Error())
	}
	status, msg := helper.MapPGError(err)
	return helper.JsonError(c, status, msg)
}

/* =========================
   POST /bloques-horario
   ========================= */

func (ctl *TimetableBlockController) Create(c *fiber.Ctx) error {
	var req d.CreateTimetableBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	block, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ctl.Conflict.CheckPlacement(&block, uuid.Nil); err != nil {
		return writeConflictOrError(c, err)
	}

	if err := ctl.DB.Create(&block).Error; err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "Bloque de horario creado", block)
}

/* =========================
   PATCH /bloques-horario/:id
   ========================= */

func (ctl *TimetableBlockController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var stored m.TimetableBlockModel
	if err := ctl.DB.First(&stored, "timetable_block_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Bloque de horario no encontrado")
		}
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}

	var req d.UpdateTimetableBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de petición inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// merge inmutable: el candidato completo se revalida, stored queda intacto
	merged, err := req.ApplyTo(stored)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// el propio bloque se excluye de la consulta de empalme
	if err := ctl.Conflict.CheckPlacement(&merged, stored.TimetableBlockID); err != nil {
		return writeConflictOrError(c, err)
	}

	changes := req.Changes(merged)
	if len(changes) == 0 {
		return helper.JsonUpdated(c, "Sin cambios", stored)
	}
	err = ctl.DB.
		Session(&gorm.Session{SkipHooks: true}).
		Model(&m.TimetableBlockModel{}).
		Where("timetable_block_id = ?", stored.TimetableBlockID).
		Updates(changes).Error
	if err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "Bloque de horario actualizado", merged)
}

/* =========================
   DELETE /bloques-horario/:id
   ========================= */

func (ctl *TimetableBlockController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// borrado incondicional por id; sin re-chequeo de empalme
	res := ctl.DB.Delete(&m.TimetableBlockModel{}, "timetable_block_id = ?", id)
	if res.Error != nil {
		status, msg := helper.MapPGError(res.Error)
		return helper.JsonError(c, status, msg)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Bloque de horario no encontrado")
	}
	return helper.JsonDeleted(c, "Bloque de horario eliminado", fiber.Map{"timetable_block_id": id})
}

/* =========================
   GET /bloques-horario?period_id=&group_id=&teacher_id=&activity_id=&day_of_week=&kind=
   ========================= */

func (ctl *TimetableBlockController) List(c *fiber.Ctx) error {
	periodID, err := helper.ParseUUIDQuery(c, "period_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if periodID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "period_id es requerido")
	}

	q := ctl.DB.Where("timetable_block_period_id = ?", *periodID)

	for param, column := range map[string]string{
		"group_id":    "timetable_block_group_id",
		"teacher_id":  "timetable_block_teacher_id",
		"activity_id": "timetable_block_activity_id",
	} {
		id, err := helper.ParseUUIDQuery(c, param)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if id != nil {
			q = q.Where(column+" = ?", *id)
		}
	}

	if raw := strings.TrimSpace(c.Query("day_of_week")); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil || day < 1 || day > 7 {
			return helper.JsonError(c, fiber.StatusBadRequest, "day_of_week debe estar entre 1 y 7")
		}
		q = q.Where("timetable_block_day_of_week = ?", day)
	}
	if kind := strings.TrimSpace(c.Query("kind")); kind != "" {
		if kind != string(m.BlockKindClass) && kind != string(m.BlockKindExtracurricular) {
			return helper.JsonError(c, fiber.StatusBadRequest, "kind debe ser class o extracurricular")
		}
		q = q.Where("timetable_block_kind = ?", kind)
	}

	var blocks []m.TimetableBlockModel
	if err := q.Find(&blocks).Error; err != nil {
		status, msg := helper.MapPGError(err)
		return helper.JsonError(c, status, msg)
	}
	svc.SortBlocks(blocks)
	return helper.JsonList(c, "Bloques de horario", blocks, nil)
}
