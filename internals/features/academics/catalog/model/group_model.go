// file: internals/features/academics/catalog/model/group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupModel struct {
	GroupID       uuid.UUID `gorm:"column:group_id;type:uuid;default:gen_random_uuid();primaryKey" json:"group_id"`
	GroupPeriodID uuid.UUID `gorm:"column:group_period_id;type:uuid;not null;index" json:"group_period_id"`
	GroupCareerID uuid.UUID `gorm:"column:group_career_id;type:uuid;not null;index" json:"group_career_id"`
	GroupName     string    `gorm:"column:group_name;type:varchar(40);not null" json:"group_name"`
	GroupSemester int       `gorm:"column:group_semester;not null;default:1" json:"group_semester"`

	GroupCreatedAt time.Time      `gorm:"column:group_created_at;type:timestamptz;not null;autoCreateTime" json:"group_created_at"`
	GroupUpdatedAt time.Time      `gorm:"column:group_updated_at;type:timestamptz;not null;autoUpdateTime" json:"group_updated_at"`
	GroupDeletedAt gorm.DeletedAt `gorm:"column:group_deleted_at;index" json:"group_deleted_at,omitempty"`
}

func (GroupModel) TableName() string { return "groups" }
