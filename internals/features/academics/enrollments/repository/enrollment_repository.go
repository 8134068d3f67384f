// file: internals/features/academics/enrollments/repository/enrollment_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/model"
)

// EnrollmentReader es el contrato de solo lectura que consumen el armador de
// horarios y el guard de inscripción a actividades.
type EnrollmentReader interface {
	// FindActiveCourseTriples regresa las combinaciones (grupo, materia, docente)
	// DISTINTAS de las inscripciones de curso activas del alumno en el periodo.
	FindActiveCourseTriples(periodID, studentID uuid.UUID) ([]model.ClassTriple, error)

	// FindActiveActivityIDs regresa las actividades con inscripción activa del
	// alumno en el periodo.
	FindActiveActivityIDs(periodID, studentID uuid.UUID) ([]uuid.UUID, error)
}

type GormEnrollmentRepository struct {
	DB *gorm.DB
}

func NewGormEnrollmentRepository(db *gorm.DB) *GormEnrollmentRepository {
	return &GormEnrollmentRepository{DB: db}
}

func (r *GormEnrollmentRepository) FindActiveCourseTriples(periodID, studentID uuid.UUID) ([]model.ClassTriple, error) {
	var rows []model.CourseEnrollmentModel
	err := r.DB.
		Where("course_enrollment_period_id = ? AND course_enrollment_student_id = ? AND course_enrollment_active = TRUE",
			periodID, studentID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return DedupTriples(rows), nil
}

// DedupTriples colapsa inscripciones duplicadas (histórico de altas repetidas)
// a combinaciones únicas, preservando el orden de aparición.
func DedupTriples(rows []model.CourseEnrollmentModel) []model.ClassTriple {
	seen := make(map[model.ClassTriple]struct{}, len(rows))
	out := make([]model.ClassTriple, 0, len(rows))
	for i := range rows {
		t := rows[i].Triple()
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (r *GormEnrollmentRepository) FindActiveActivityIDs(periodID, studentID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.DB.
		Model(&model.ActivityEnrollmentModel{}).
		Where("activity_enrollment_period_id = ? AND activity_enrollment_student_id = ? AND activity_enrollment_active = TRUE",
			periodID, studentID).
		Pluck("activity_enrollment_activity_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
