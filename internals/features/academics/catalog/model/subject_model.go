// file: internals/features/academics/catalog/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID       uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`
	SubjectCareerID uuid.UUID `gorm:"column:subject_career_id;type:uuid;not null;index" json:"subject_career_id"`
	SubjectName     string    `gorm:"column:subject_name;type:varchar(120);not null" json:"subject_name"`
	SubjectCode     string    `gorm:"column:subject_code;type:varchar(20);not null" json:"subject_code"`
	SubjectCredits  int       `gorm:"column:subject_credits;not null;default:0" json:"subject_credits"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;type:timestamptz;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;type:timestamptz;not null;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
