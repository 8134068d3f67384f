// file: internals/features/academics/enrollments/model/activity_enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityEnrollmentModel liga a un alumno con una actividad extracurricular.
// El índice único compuesto es el respaldo contra dobles altas concurrentes.
type ActivityEnrollmentModel struct {
	ActivityEnrollmentID uuid.UUID `gorm:"column:activity_enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_enrollment_id"`

	ActivityEnrollmentPeriodID   uuid.UUID `gorm:"column:activity_enrollment_period_id;type:uuid;not null;uniqueIndex:uq_activity_enrollment,priority:1" json:"activity_enrollment_period_id"`
	ActivityEnrollmentStudentID  uuid.UUID `gorm:"column:activity_enrollment_student_id;type:uuid;not null;uniqueIndex:uq_activity_enrollment,priority:2" json:"activity_enrollment_student_id"`
	ActivityEnrollmentActivityID uuid.UUID `gorm:"column:activity_enrollment_activity_id;type:uuid;not null;uniqueIndex:uq_activity_enrollment,priority:3" json:"activity_enrollment_activity_id"`

	ActivityEnrollmentActive bool `gorm:"column:activity_enrollment_active;not null;default:true" json:"activity_enrollment_active"`

	ActivityEnrollmentCreatedAt time.Time      `gorm:"column:activity_enrollment_created_at;type:timestamptz;not null;autoCreateTime" json:"activity_enrollment_created_at"`
	ActivityEnrollmentUpdatedAt time.Time      `gorm:"column:activity_enrollment_updated_at;type:timestamptz;not null;autoUpdateTime" json:"activity_enrollment_updated_at"`
	ActivityEnrollmentDeletedAt gorm.DeletedAt `gorm:"column:activity_enrollment_deleted_at;index" json:"activity_enrollment_deleted_at,omitempty"`
}

func (ActivityEnrollmentModel) TableName() string { return "activity_enrollments" }
