// file: internals/features/academics/enrollments/model/course_enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseEnrollmentModel liga a un alumno con una oferta de clase
// (grupo, materia, docente) dentro de un periodo.
type CourseEnrollmentModel struct {
	CourseEnrollmentID uuid.UUID `gorm:"column:course_enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_enrollment_id"`

	CourseEnrollmentPeriodID  uuid.UUID `gorm:"column:course_enrollment_period_id;type:uuid;not null;index:idx_course_enrollments_period_student,priority:1" json:"course_enrollment_period_id"`
	CourseEnrollmentStudentID uuid.UUID `gorm:"column:course_enrollment_student_id;type:uuid;not null;index:idx_course_enrollments_period_student,priority:2" json:"course_enrollment_student_id"`

	CourseEnrollmentGroupID   uuid.UUID `gorm:"column:course_enrollment_group_id;type:uuid;not null" json:"course_enrollment_group_id"`
	CourseEnrollmentSubjectID uuid.UUID `gorm:"column:course_enrollment_subject_id;type:uuid;not null" json:"course_enrollment_subject_id"`
	CourseEnrollmentTeacherID uuid.UUID `gorm:"column:course_enrollment_teacher_id;type:uuid;not null" json:"course_enrollment_teacher_id"`

	CourseEnrollmentActive bool `gorm:"column:course_enrollment_active;not null;default:true" json:"course_enrollment_active"`

	CourseEnrollmentCreatedAt time.Time      `gorm:"column:course_enrollment_created_at;type:timestamptz;not null;autoCreateTime" json:"course_enrollment_created_at"`
	CourseEnrollmentUpdatedAt time.Time      `gorm:"column:course_enrollment_updated_at;type:timestamptz;not null;autoUpdateTime" json:"course_enrollment_updated_at"`
	CourseEnrollmentDeletedAt gorm.DeletedAt `gorm:"column:course_enrollment_deleted_at;index" json:"course_enrollment_deleted_at,omitempty"`
}

func (CourseEnrollmentModel) TableName() string { return "course_enrollments" }

// ClassTriple es la combinación (grupo, materia, docente) que identifica la
// oferta de clase para fines de horario.
type ClassTriple struct {
	GroupID   uuid.UUID
	SubjectID uuid.UUID
	TeacherID uuid.UUID
}

func (m *CourseEnrollmentModel) Triple() ClassTriple {
	return ClassTriple{
		GroupID:   m.CourseEnrollmentGroupID,
		SubjectID: m.CourseEnrollmentSubjectID,
		TeacherID: m.CourseEnrollmentTeacherID,
	}
}
