// file: internals/features/academics/timetable/service/schedule_service.go
package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollRepo "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/repository"
	model "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/model"
)

// ErrNoSchedule: el alumno no está inscrito en nada dentro del periodo.
// Distinto de "inscrito pero sin bloques" a nivel de mensaje para el caller.
var ErrNoSchedule = errors.New("el alumno no tiene horario en este periodo")

// ScheduleService arma la vista semanal consolidada (solo lectura).
type ScheduleService struct {
	DB          *gorm.DB
	Enrollments enrollRepo.EnrollmentReader
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{
		DB:          db,
		Enrollments: enrollRepo.NewGormEnrollmentRepository(db),
	}
}

// TeacherSchedule: todos los bloques del docente en el periodo.
func (s *ScheduleService) TeacherSchedule(periodID, teacherID uuid.UUID) ([]model.TimetableBlockModel, error) {
	var blocks []model.TimetableBlockModel
	err := s.DB.
		Where("timetable_block_period_id = ? AND timetable_block_teacher_id = ?", periodID, teacherID).
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	SortBlocks(blocks)
	return blocks, nil
}

// GroupSchedule: todos los bloques del grupo en el periodo.
func (s *ScheduleService) GroupSchedule(periodID, groupID uuid.UUID) ([]model.TimetableBlockModel, error) {
	var blocks []model.TimetableBlockModel
	err := s.DB.
		Where("timetable_block_period_id = ? AND timetable_block_group_id = ?", periodID, groupID).
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	SortBlocks(blocks)
	return blocks, nil
}

// StudentSchedule resuelve en dos fases: (1) combinaciones únicas
// (grupo, materia, docente) de inscripciones de curso activas → bloques de
// clase; (2) actividades activas → bloques extracurriculares. Unión vacía ⇒
// ErrNoSchedule.
func (s *ScheduleService) StudentSchedule(periodID, studentID uuid.UUID) ([]model.TimetableBlockModel, error) {
	triples, err := s.Enrollments.FindActiveCourseTriples(periodID, studentID)
	if err != nil {
		return nil, err
	}

	var blocks []model.TimetableBlockModel

	if len(triples) > 0 {
		conds := make([]string, 0, len(triples))
		args := make([]interface{}, 0, len(triples)*3)
		for _, t := range triples {
			conds = append(conds, "(timetable_block_group_id = ? AND timetable_block_subject_id = ? AND timetable_block_teacher_id = ?)")
			args = append(args, t.GroupID, t.SubjectID, t.TeacherID)
		}
		var classBlocks []model.TimetableBlockModel
		err := s.DB.
			Where("timetable_block_period_id = ? AND timetable_block_kind = ?", periodID, model.BlockKindClass).
			Where("("+strings.Join(conds, " OR ")+")", args...).
			Find(&classBlocks).Error
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, classBlocks...)
	}

	activityIDs, err := s.Enrollments.FindActiveActivityIDs(periodID, studentID)
	if err != nil {
		return nil, err
	}
	if len(activityIDs) > 0 {
		var actBlocks []model.TimetableBlockModel
		err := s.DB.
			Where("timetable_block_period_id = ? AND timetable_block_kind = ? AND timetable_block_activity_id IN ?",
				periodID, model.BlockKindExtracurricular, activityIDs).
			Find(&actBlocks).Error
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, actBlocks...)
	}

	if len(blocks) == 0 {
		return nil, ErrNoSchedule
	}
	SortBlocks(blocks)
	return blocks, nil
}

// SortBlocks ordena por (día ascendente, hora de inicio ascendente). Comparar
// los strings HH:MM es válido porque van zero-padded.
func SortBlocks(blocks []model.TimetableBlockModel) {
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].TimetableBlockDayOfWeek != blocks[j].TimetableBlockDayOfWeek {
			return blocks[i].TimetableBlockDayOfWeek < blocks[j].TimetableBlockDayOfWeek
		}
		return blocks[i].TimetableBlockStartTime < blocks[j].TimetableBlockStartTime
	})
}
