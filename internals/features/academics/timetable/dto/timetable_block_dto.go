// file: internals/features/academics/timetable/dto/timetable_block_dto.go
package dto

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/model"
	"github.com/L20660042/Backend-Proy-sub000/internals/helpers/timeutil"
)

var (
	ErrInvalidTimeRange   = errors.New("la hora de fin debe ser mayor a la de inicio")
	ErrMissingClassActors = errors.New("un bloque de clase requiere grupo, materia y docente")
	ErrMissingActivity    = errors.New("un bloque extracurricular requiere actividad")
	ErrMixedActors        = errors.New("los actores del bloque no corresponden a su tipo")
	ErrKindImmutable      = errors.New("el tipo de bloque no puede cambiarse; elimina el bloque y crea uno nuevo")
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateTimetableBlockRequest struct {
	TimetableBlockPeriodID  uuid.UUID `json:"timetable_block_period_id" validate:"required"`
	TimetableBlockKind      string    `json:"timetable_block_kind" validate:"required,oneof=class extracurricular"`
	TimetableBlockDayOfWeek int       `json:"timetable_block_day_of_week" validate:"required,min=1,max=7"`
	TimetableBlockStartTime string    `json:"timetable_block_start_time" validate:"required"`
	TimetableBlockEndTime   string    `json:"timetable_block_end_time" validate:"required"`

	// libre/legacy: se normaliza siempre; en extracurricular se fuerza presencial
	TimetableBlockDeliveryMode *string `json:"timetable_block_delivery_mode" validate:"omitempty"`

	TimetableBlockRoom *string `json:"timetable_block_room" validate:"omitempty,max=60"`

	TimetableBlockGroupID    *uuid.UUID `json:"timetable_block_group_id" validate:"omitempty"`
	TimetableBlockSubjectID  *uuid.UUID `json:"timetable_block_subject_id" validate:"omitempty"`
	TimetableBlockTeacherID  *uuid.UUID `json:"timetable_block_teacher_id" validate:"omitempty"`
	TimetableBlockActivityID *uuid.UUID `json:"timetable_block_activity_id" validate:"omitempty"`

	TimetableBlockLabels map[string]interface{} `json:"timetable_block_labels" validate:"omitempty"`
}

// ToModel construye el candidato ya normalizado y validado estructuralmente.
func (r CreateTimetableBlockRequest) ToModel() (model.TimetableBlockModel, error) {
	m := model.TimetableBlockModel{
		TimetableBlockPeriodID:  r.TimetableBlockPeriodID,
		TimetableBlockKind:      model.BlockKind(r.TimetableBlockKind),
		TimetableBlockDayOfWeek: r.TimetableBlockDayOfWeek,
		TimetableBlockStartTime: r.TimetableBlockStartTime,
		TimetableBlockEndTime:   r.TimetableBlockEndTime,
		TimetableBlockRoom:      normalizeRoom(r.TimetableBlockRoom),
	}
	if r.TimetableBlockLabels != nil {
		m.TimetableBlockLabels = datatypes.JSONMap(r.TimetableBlockLabels)
	}

	switch m.TimetableBlockKind {
	case model.BlockKindClass:
		m.TimetableBlockGroupID = r.TimetableBlockGroupID
		m.TimetableBlockSubjectID = r.TimetableBlockSubjectID
		m.TimetableBlockTeacherID = r.TimetableBlockTeacherID
		raw := ""
		if r.TimetableBlockDeliveryMode != nil {
			raw = *r.TimetableBlockDeliveryMode
		}
		m.TimetableBlockDeliveryMode = model.NormalizeDeliveryMode(raw)
	case model.BlockKindExtracurricular:
		m.TimetableBlockActivityID = r.TimetableBlockActivityID
		// regla MVP: las actividades siempre se asisten físicamente,
		// sin importar lo que mande el caller
		m.TimetableBlockDeliveryMode = model.DeliveryInPerson
	}

	if err := ValidateShape(&m); err != nil {
		return model.TimetableBlockModel{}, err
	}
	return m, nil
}

type UpdateTimetableBlockRequest struct {
	TimetableBlockPeriodID  *uuid.UUID `json:"timetable_block_period_id" validate:"omitempty"`
	TimetableBlockKind      *string    `json:"timetable_block_kind" validate:"omitempty,oneof=class extracurricular"`
	TimetableBlockDayOfWeek *int       `json:"timetable_block_day_of_week" validate:"omitempty,min=1,max=7"`
	TimetableBlockStartTime *string    `json:"timetable_block_start_time" validate:"omitempty"`
	TimetableBlockEndTime   *string    `json:"timetable_block_end_time" validate:"omitempty"`

	TimetableBlockDeliveryMode *string `json:"timetable_block_delivery_mode" validate:"omitempty"`

	// string vacío = quitar el aula
	TimetableBlockRoom *string `json:"timetable_block_room" validate:"omitempty,max=60"`

	TimetableBlockGroupID    *uuid.UUID `json:"timetable_block_group_id" validate:"omitempty"`
	TimetableBlockSubjectID  *uuid.UUID `json:"timetable_block_subject_id" validate:"omitempty"`
	TimetableBlockTeacherID  *uuid.UUID `json:"timetable_block_teacher_id" validate:"omitempty"`
	TimetableBlockActivityID *uuid.UUID `json:"timetable_block_activity_id" validate:"omitempty"`

	TimetableBlockLabels map[string]interface{} `json:"timetable_block_labels" validate:"omitempty"`
}

// ApplyTo hace el merge inmutable: los campos no enviados conservan el valor
// almacenado y el resultado es un candidato NUEVO, completo, listo para
// revalidar. Nunca muta stored.
func (r UpdateTimetableBlockRequest) ApplyTo(stored model.TimetableBlockModel) (model.TimetableBlockModel, error) {
	m := stored // copia por valor

	if r.TimetableBlockPeriodID != nil {
		// cambiar de periodo se trata como colocación nueva: mismas validaciones
		m.TimetableBlockPeriodID = *r.TimetableBlockPeriodID
	}
	// el tipo es inmutable: los actores retenidos del tipo original harían
	// fallar siempre la validación del candidato; se rechaza con mensaje claro
	if r.TimetableBlockKind != nil && model.BlockKind(*r.TimetableBlockKind) != stored.TimetableBlockKind {
		return model.TimetableBlockModel{}, ErrKindImmutable
	}
	if r.TimetableBlockDayOfWeek != nil {
		m.TimetableBlockDayOfWeek = *r.TimetableBlockDayOfWeek
	}
	if r.TimetableBlockStartTime != nil {
		m.TimetableBlockStartTime = *r.TimetableBlockStartTime
	}
	if r.TimetableBlockEndTime != nil {
		m.TimetableBlockEndTime = *r.TimetableBlockEndTime
	}
	if r.TimetableBlockRoom != nil {
		m.TimetableBlockRoom = normalizeRoom(r.TimetableBlockRoom)
	}
	if r.TimetableBlockGroupID != nil {
		m.TimetableBlockGroupID = r.TimetableBlockGroupID
	}
	if r.TimetableBlockSubjectID != nil {
		m.TimetableBlockSubjectID = r.TimetableBlockSubjectID
	}
	if r.TimetableBlockTeacherID != nil {
		m.TimetableBlockTeacherID = r.TimetableBlockTeacherID
	}
	if r.TimetableBlockActivityID != nil {
		m.TimetableBlockActivityID = r.TimetableBlockActivityID
	}
	if r.TimetableBlockLabels != nil {
		m.TimetableBlockLabels = datatypes.JSONMap(r.TimetableBlockLabels)
	}

	if m.TimetableBlockKind == model.BlockKindExtracurricular {
		m.TimetableBlockDeliveryMode = model.DeliveryInPerson
	} else if r.TimetableBlockDeliveryMode != nil {
		m.TimetableBlockDeliveryMode = model.NormalizeDeliveryMode(*r.TimetableBlockDeliveryMode)
	}

	// offsets del candidato completo (el conflicto se evalúa en minutos)
	if err := syncMinutes(&m); err != nil {
		return model.TimetableBlockModel{}, err
	}
	if err := ValidateShape(&m); err != nil {
		return model.TimetableBlockModel{}, err
	}
	return m, nil
}

// Changes regresa solo las columnas realmente enviadas, con los valores ya
// normalizados del candidato, para persistir el update parcial.
func (r UpdateTimetableBlockRequest) Changes(merged model.TimetableBlockModel) map[string]interface{} {
	ch := map[string]interface{}{}
	if r.TimetableBlockPeriodID != nil {
		ch["timetable_block_period_id"] = merged.TimetableBlockPeriodID
	}
	if r.TimetableBlockDayOfWeek != nil {
		ch["timetable_block_day_of_week"] = merged.TimetableBlockDayOfWeek
	}
	if r.TimetableBlockStartTime != nil || r.TimetableBlockEndTime != nil {
		ch["timetable_block_start_time"] = merged.TimetableBlockStartTime
		ch["timetable_block_end_time"] = merged.TimetableBlockEndTime
		ch["timetable_block_start_min"] = merged.TimetableBlockStartMin
		ch["timetable_block_end_min"] = merged.TimetableBlockEndMin
	}
	if r.TimetableBlockDeliveryMode != nil {
		ch["timetable_block_delivery_mode"] = merged.TimetableBlockDeliveryMode
	}
	if r.TimetableBlockRoom != nil {
		ch["timetable_block_room"] = merged.TimetableBlockRoom
	}
	if r.TimetableBlockGroupID != nil {
		ch["timetable_block_group_id"] = merged.TimetableBlockGroupID
	}
	if r.TimetableBlockSubjectID != nil {
		ch["timetable_block_subject_id"] = merged.TimetableBlockSubjectID
	}
	if r.TimetableBlockTeacherID != nil {
		ch["timetable_block_teacher_id"] = merged.TimetableBlockTeacherID
	}
	if r.TimetableBlockActivityID != nil {
		ch["timetable_block_activity_id"] = merged.TimetableBlockActivityID
	}
	if r.TimetableBlockLabels != nil {
		ch["timetable_block_labels"] = merged.TimetableBlockLabels
	}
	return ch
}

/* =========================================================
   2) Validación estructural compartida
   ========================================================= */

// ValidateShape valida el tuple completo: rango horario y actores según kind.
func ValidateShape(m *model.TimetableBlockModel) error {
	if err := syncMinutes(m); err != nil {
		return err
	}
	if m.TimetableBlockEndMin <= m.TimetableBlockStartMin {
		return ErrInvalidTimeRange
	}
	if m.TimetableBlockDayOfWeek < 1 || m.TimetableBlockDayOfWeek > 7 {
		return errors.New("día de la semana fuera de rango (1..7)")
	}

	switch m.TimetableBlockKind {
	case model.BlockKindClass:
		if m.TimetableBlockGroupID == nil || m.TimetableBlockSubjectID == nil || m.TimetableBlockTeacherID == nil {
			return ErrMissingClassActors
		}
		if m.TimetableBlockActivityID != nil {
			return ErrMixedActors
		}
	case model.BlockKindExtracurricular:
		if m.TimetableBlockActivityID == nil {
			return ErrMissingActivity
		}
		if m.TimetableBlockGroupID != nil || m.TimetableBlockSubjectID != nil || m.TimetableBlockTeacherID != nil {
			return ErrMixedActors
		}
	default:
		return errors.New("tipo de bloque desconocido")
	}
	return nil
}

func syncMinutes(m *model.TimetableBlockModel) error {
	start, err := timeutil.ParseMinutes(m.TimetableBlockStartTime)
	if err != nil {
		return err
	}
	end, err := timeutil.ParseMinutes(m.TimetableBlockEndTime)
	if err != nil {
		return err
	}
	m.TimetableBlockStartMin = start
	m.TimetableBlockEndMin = end
	m.TimetableBlockStartTime = timeutil.FormatMinutes(start)
	m.TimetableBlockEndTime = timeutil.FormatMinutes(end)
	return nil
}

func normalizeRoom(room *string) *string {
	if room == nil || *room == "" {
		return nil
	}
	return room
}
