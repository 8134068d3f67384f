// file: internals/features/academics/catalog/model/activity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityModel: actividad extracurricular (deportiva/cultural). Su horario
// vive en timetable_blocks con kind=extracurricular.
type ActivityModel struct {
	ActivityID       uuid.UUID `gorm:"column:activity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_id"`
	ActivityPeriodID uuid.UUID `gorm:"column:activity_period_id;type:uuid;not null;index" json:"activity_period_id"`
	ActivityName     string    `gorm:"column:activity_name;type:varchar(120);not null" json:"activity_name"`
	ActivityKind     string    `gorm:"column:activity_kind;type:varchar(40);not null;default:'deportiva'" json:"activity_kind"`
	ActivityQuota    int       `gorm:"column:activity_quota;not null;default:0" json:"activity_quota"`

	ActivityCreatedAt time.Time      `gorm:"column:activity_created_at;type:timestamptz;not null;autoCreateTime" json:"activity_created_at"`
	ActivityUpdatedAt time.Time      `gorm:"column:activity_updated_at;type:timestamptz;not null;autoUpdateTime" json:"activity_updated_at"`
	ActivityDeletedAt gorm.DeletedAt `gorm:"column:activity_deleted_at;index" json:"activity_deleted_at,omitempty"`
}

func (ActivityModel) TableName() string { return "activities" }
