// file: internals/features/academics/catalog/model/class_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassAssignmentModel: la tupla (periodo, carrera, grupo, materia, docente)
// que define una oferta de clase. Las inscripciones de curso nacen de aquí.
type ClassAssignmentModel struct {
	ClassAssignmentID uuid.UUID `gorm:"column:class_assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_assignment_id"`

	ClassAssignmentPeriodID  uuid.UUID `gorm:"column:class_assignment_period_id;type:uuid;not null;uniqueIndex:uq_class_assignment,priority:1" json:"class_assignment_period_id"`
	ClassAssignmentCareerID  uuid.UUID `gorm:"column:class_assignment_career_id;type:uuid;not null" json:"class_assignment_career_id"`
	ClassAssignmentGroupID   uuid.UUID `gorm:"column:class_assignment_group_id;type:uuid;not null;uniqueIndex:uq_class_assignment,priority:2" json:"class_assignment_group_id"`
	ClassAssignmentSubjectID uuid.UUID `gorm:"column:class_assignment_subject_id;type:uuid;not null;uniqueIndex:uq_class_assignment,priority:3" json:"class_assignment_subject_id"`
	ClassAssignmentTeacherID uuid.UUID `gorm:"column:class_assignment_teacher_id;type:uuid;not null;uniqueIndex:uq_class_assignment,priority:4" json:"class_assignment_teacher_id"`

	ClassAssignmentCreatedAt time.Time      `gorm:"column:class_assignment_created_at;type:timestamptz;not null;autoCreateTime" json:"class_assignment_created_at"`
	ClassAssignmentUpdatedAt time.Time      `gorm:"column:class_assignment_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_assignment_updated_at"`
	ClassAssignmentDeletedAt gorm.DeletedAt `gorm:"column:class_assignment_deleted_at;index" json:"class_assignment_deleted_at,omitempty"`
}

func (ClassAssignmentModel) TableName() string { return "class_assignments" }
