// file: internals/features/academics/catalog/model/period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PeriodModel: periodo académico (p.ej. "2026-1"). El periodo es dueño de los
// bloques de horario; un bloque no lo sobrevive.
type PeriodModel struct {
	PeriodID     uuid.UUID `gorm:"column:period_id;type:uuid;default:gen_random_uuid();primaryKey" json:"period_id"`
	PeriodName   string    `gorm:"column:period_name;type:varchar(40);not null;uniqueIndex" json:"period_name"`
	PeriodActive bool      `gorm:"column:period_active;not null;default:false" json:"period_active"`

	PeriodStartDate *time.Time `gorm:"column:period_start_date;type:date" json:"period_start_date,omitempty"`
	PeriodEndDate   *time.Time `gorm:"column:period_end_date;type:date" json:"period_end_date,omitempty"`

	PeriodCreatedAt time.Time      `gorm:"column:period_created_at;type:timestamptz;not null;autoCreateTime" json:"period_created_at"`
	PeriodUpdatedAt time.Time      `gorm:"column:period_updated_at;type:timestamptz;not null;autoUpdateTime" json:"period_updated_at"`
	PeriodDeletedAt gorm.DeletedAt `gorm:"column:period_deleted_at;index" json:"period_deleted_at,omitempty"`
}

func (PeriodModel) TableName() string { return "periods" }
