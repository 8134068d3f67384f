// file: internals/features/academics/enrollments/service/activity_guard_service.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollModel "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/model"
	enrollRepo "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/repository"
	ttModel "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/model"
	"github.com/L20660042/Backend-Proy-sub000/internals/helpers/timeutil"
)

// ErrActivityWithoutSchedule: una actividad sin bloques no puede validarse y
// nunca se auto-aprueba.
var ErrActivityWithoutSchedule = errors.New("la actividad no tiene horario registrado en el periodo")

// ErrAlreadyEnrolled: el alumno ya tiene una inscripción activa a la actividad.
// Conflicto de estado del cliente, no una falla interna.
var ErrAlreadyEnrolled = errors.New("el alumno ya está inscrito en esta actividad")

// ScheduleConflictError: rechazo de inscripción por empalme físico del alumno.
type ScheduleConflictError struct {
	ConflictingLabel string `json:"conflicting_label"`
	TimeRange        string `json:"time_range"`
	DayOfWeek        int    `json:"day_of_week"`
	CandidateRange   string `json:"candidate_range"`
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("empalme con %s (%s)", e.ConflictingLabel, e.TimeRange)
}

// BlockReader es la lectura de bloques que consume el guard; existe como
// contrato para poder validar las reglas sin una BD viva.
type BlockReader interface {
	// ActivityBlocks: bloques extracurriculares de las actividades dadas.
	ActivityBlocks(periodID uuid.UUID, activityIDs []uuid.UUID) ([]ttModel.TimetableBlockModel, error)
	// ClassBlocks: bloques de clase del tuple (grupo, materia, docente).
	ClassBlocks(periodID uuid.UUID, t enrollModel.ClassTriple) ([]ttModel.TimetableBlockModel, error)
}

type GormBlockReader struct {
	DB *gorm.DB
}

func NewGormBlockReader(db *gorm.DB) *GormBlockReader {
	return &GormBlockReader{DB: db}
}

func (r *GormBlockReader) ActivityBlocks(periodID uuid.UUID, activityIDs []uuid.UUID) ([]ttModel.TimetableBlockModel, error) {
	var blocks []ttModel.TimetableBlockModel
	err := r.DB.
		Where("timetable_block_period_id = ? AND timetable_block_kind = ? AND timetable_block_activity_id IN ?",
			periodID, ttModel.BlockKindExtracurricular, activityIDs).
		Find(&blocks).Error
	return blocks, err
}

func (r *GormBlockReader) ClassBlocks(periodID uuid.UUID, t enrollModel.ClassTriple) ([]ttModel.TimetableBlockModel, error) {
	var blocks []ttModel.TimetableBlockModel
	err := r.DB.
		Where("timetable_block_period_id = ? AND timetable_block_kind = ?", periodID, ttModel.BlockKindClass).
		Where("timetable_block_group_id = ? AND timetable_block_subject_id = ? AND timetable_block_teacher_id = ?",
			t.GroupID, t.SubjectID, t.TeacherID).
		Find(&blocks).Error
	return blocks, err
}

// ActivityGuardService valida, desde la perspectiva del alumno, que inscribirse
// a una actividad no lo ponga en dos lugares físicos a la vez. No evalúa
// exclusividad de docente ni de aula: eso se resuelve al autorar los bloques.
type ActivityGuardService struct {
	Enrollments enrollRepo.EnrollmentReader
	Blocks      BlockReader
}

func NewActivityGuardService(db *gorm.DB) *ActivityGuardService {
	return &ActivityGuardService{
		Enrollments: enrollRepo.NewGormEnrollmentRepository(db),
		Blocks:      NewGormBlockReader(db),
	}
}

// ValidateActivityEnrollment corre el guard completo para un alumno.
func (s *ActivityGuardService) ValidateActivityEnrollment(periodID, studentID, activityID uuid.UUID) error {
	// 1) bloques de la actividad candidata
	candidate, err := s.Blocks.ActivityBlocks(periodID, []uuid.UUID{activityID})
	if err != nil {
		return err
	}
	if len(candidate) == 0 {
		return ErrActivityWithoutSchedule
	}

	// 2) clases activas del alumno; solo las físicamente vinculantes bloquean.
	// La modalidad almacenada puede venir legacy: se normaliza aquí, igual que
	// en el detector de empalmes.
	var existing []ttModel.TimetableBlockModel
	triples, err := s.Enrollments.FindActiveCourseTriples(periodID, studentID)
	if err != nil {
		return err
	}
	for _, t := range triples {
		classBlocks, err := s.Blocks.ClassBlocks(periodID, t)
		if err != nil {
			return err
		}
		for i := range classBlocks {
			mode := ttModel.NormalizeDeliveryMode(string(classBlocks[i].TimetableBlockDeliveryMode))
			if mode == ttModel.DeliveryInPerson {
				existing = append(existing, classBlocks[i])
			}
		}
	}

	// 3) otras actividades activas del alumno (siempre presenciales)
	activityIDs, err := s.Enrollments.FindActiveActivityIDs(periodID, studentID)
	if err != nil {
		return err
	}
	others := make([]uuid.UUID, 0, len(activityIDs))
	for _, id := range activityIDs {
		if id != activityID {
			others = append(others, id)
		}
	}
	if len(others) > 0 {
		actBlocks, err := s.Blocks.ActivityBlocks(periodID, others)
		if err != nil {
			return err
		}
		existing = append(existing, actBlocks...)
	}

	// 4) barrido de traslapes por día
	if clash := findStudentClash(candidate, existing); clash != nil {
		return clash
	}
	return nil
}

// findStudentClash particiona los bloques existentes por día y compara cada
// bloque candidato contra los del mismo día. Cualquier traslape es rechazo.
func findStudentClash(candidate, existing []ttModel.TimetableBlockModel) *ScheduleConflictError {
	byDay := make(map[int][]ttModel.TimetableBlockModel, 7)
	for i := range existing {
		d := existing[i].TimetableBlockDayOfWeek
		byDay[d] = append(byDay[d], existing[i])
	}

	for i := range candidate {
		c := &candidate[i]
		for _, b := range byDay[c.TimetableBlockDayOfWeek] {
			if timeutil.Overlaps(c.TimetableBlockStartMin, c.TimetableBlockEndMin,
				b.TimetableBlockStartMin, b.TimetableBlockEndMin) {
				return &ScheduleConflictError{
					ConflictingLabel: b.Label(),
					TimeRange:        b.TimeRange(),
					DayOfWeek:        b.TimetableBlockDayOfWeek,
					CandidateRange:   c.TimeRange(),
				}
			}
		}
	}
	return nil
}
