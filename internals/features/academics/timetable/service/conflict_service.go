// file: internals/features/academics/timetable/service/conflict_service.go
package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/model"
	"github.com/L20660042/Backend-Proy-sub000/internals/helpers/timeutil"
)

// ConflictKind es la dimensión sobre la que dos bloques chocan.
type ConflictKind string

const (
	ConflictTeacher ConflictKind = "teacher"
	ConflictRoom    ConflictKind = "room"
	ConflictGroup   ConflictKind = "group"
)

func (k ConflictKind) Spanish() string {
	switch k {
	case ConflictTeacher:
		return "docente"
	case ConflictRoom:
		return "aula"
	case ConflictGroup:
		return "grupo"
	default:
		return string(k)
	}
}

// ConflictError rechaza la escritura de un bloque; trae la clase de actor en
// conflicto y la ventana del bloque existente para el mensaje al usuario.
type ConflictError struct {
	Kind            ConflictKind `json:"kind"`
	ExistingBlockID uuid.UUID    `json:"existing_block_id"`
	ExistingLabel   string       `json:"existing_label"`
	TimeRange       string       `json:"time_range"`
	DayOfWeek       int          `json:"day_of_week"`
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("empalme de %s con %s (%s)", e.Kind.Spanish(), e.ExistingLabel, e.TimeRange)
}

type ConflictService struct {
	DB *gorm.DB
}

func NewConflictService(db *gorm.DB) *ConflictService {
	return &ConflictService{DB: db}
}

// CheckPlacement decide si el candidato puede insertarse en su (periodo, día)
// sin violar las reglas de empalme. En update, excludeID saca al propio bloque
// de la consulta.
func (s *ConflictService) CheckPlacement(cand *model.TimetableBlockModel, excludeID uuid.UUID) error {
	conds, args := candidatePredicates(cand)
	if len(conds) == 0 {
		// candidato puramente asíncrono sin aula: no reserva recurso físico
		return nil
	}

	q := s.DB.
		Where("timetable_block_period_id = ? AND timetable_block_day_of_week = ?",
			cand.TimetableBlockPeriodID, cand.TimetableBlockDayOfWeek).
		Where("("+strings.Join(conds, " OR ")+")", args...)
	if excludeID != uuid.Nil {
		q = q.Where("timetable_block_id <> ?", excludeID)
	}

	var rows []model.TimetableBlockModel
	if err := q.Find(&rows).Error; err != nil {
		return err
	}
	if c := findConflict(cand, rows, excludeID); c != nil {
		return c
	}
	return nil
}

// candidatePredicates arma los predicados de actor activos según la modalidad
// del candidato (tabla de reglas):
//   - docente: participa si la modalidad ≠ asíncrona
//   - aula:    participa si la modalidad ≠ asíncrona
//   - grupo:   participa solo si la modalidad es presencial
func candidatePredicates(cand *model.TimetableBlockModel) ([]string, []interface{}) {
	mode := model.NormalizeDeliveryMode(string(cand.TimetableBlockDeliveryMode))
	var conds []string
	var args []interface{}

	if mode != model.DeliveryAsynchronous {
		if cand.TimetableBlockTeacherID != nil {
			conds = append(conds, "timetable_block_teacher_id = ?")
			args = append(args, *cand.TimetableBlockTeacherID)
		}
		if cand.TimetableBlockRoom != nil && *cand.TimetableBlockRoom != "" {
			conds = append(conds, "timetable_block_room = ?")
			args = append(args, *cand.TimetableBlockRoom)
		}
	}
	if mode == model.DeliveryInPerson && cand.TimetableBlockGroupID != nil {
		conds = append(conds, "timetable_block_group_id = ?")
		args = append(args, *cand.TimetableBlockGroupID)
	}
	return conds, args
}

// findConflict evalúa al candidato contra los bloques del mismo día ya
// almacenados. Primera regla que dispara gana; sin traslape de minutos no hay
// nada que evaluar. excludeID saca al propio bloque del barrido (update), por
// si la consulta que armó sameDay no lo filtró.
func findConflict(cand *model.TimetableBlockModel, sameDay []model.TimetableBlockModel, excludeID uuid.UUID) *ConflictError {
	candMode := model.NormalizeDeliveryMode(string(cand.TimetableBlockDeliveryMode))
	candAsync := candMode == model.DeliveryAsynchronous

	for i := range sameDay {
		b := &sameDay[i]
		if excludeID != uuid.Nil && b.TimetableBlockID == excludeID {
			continue
		}
		if !timeutil.Overlaps(cand.TimetableBlockStartMin, cand.TimetableBlockEndMin,
			b.TimetableBlockStartMin, b.TimetableBlockEndMin) {
			continue
		}
		// tolerancia a datos legacy: normaliza también la modalidad almacenada
		bMode := model.NormalizeDeliveryMode(string(b.TimetableBlockDeliveryMode))

		// docente: recurso físico salvo que alguno de los dos sea asíncrono
		if !candAsync && bMode != model.DeliveryAsynchronous &&
			cand.TimetableBlockTeacherID != nil && b.TimetableBlockTeacherID != nil &&
			*cand.TimetableBlockTeacherID == *b.TimetableBlockTeacherID {
			return conflictFrom(ConflictTeacher, b)
		}

		// aula: igual que docente, match exacto (case-sensitive)
		if !candAsync && bMode != model.DeliveryAsynchronous &&
			cand.TimetableBlockRoom != nil && b.TimetableBlockRoom != nil &&
			*cand.TimetableBlockRoom != "" && *cand.TimetableBlockRoom == *b.TimetableBlockRoom {
			return conflictFrom(ConflictRoom, b)
		}

		// grupo: solo presencial × presencial consume el tiempo del grupo
		if candMode == model.DeliveryInPerson && bMode == model.DeliveryInPerson &&
			cand.TimetableBlockGroupID != nil && b.TimetableBlockGroupID != nil &&
			*cand.TimetableBlockGroupID == *b.TimetableBlockGroupID {
			return conflictFrom(ConflictGroup, b)
		}
	}
	return nil
}

func conflictFrom(kind ConflictKind, b *model.TimetableBlockModel) *ConflictError {
	return &ConflictError{
		Kind:            kind,
		ExistingBlockID: b.TimetableBlockID,
		ExistingLabel:   b.Label(),
		TimeRange:       b.TimeRange(),
		DayOfWeek:       b.TimetableBlockDayOfWeek,
	}
}
