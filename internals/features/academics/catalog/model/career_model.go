// file: internals/features/academics/catalog/model/career_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CareerModel struct {
	CareerID   uuid.UUID `gorm:"column:career_id;type:uuid;default:gen_random_uuid();primaryKey" json:"career_id"`
	CareerName string    `gorm:"column:career_name;type:varchar(120);not null;uniqueIndex" json:"career_name"`
	CareerCode string    `gorm:"column:career_code;type:varchar(20);not null" json:"career_code"`

	CareerCreatedAt time.Time      `gorm:"column:career_created_at;type:timestamptz;not null;autoCreateTime" json:"career_created_at"`
	CareerUpdatedAt time.Time      `gorm:"column:career_updated_at;type:timestamptz;not null;autoUpdateTime" json:"career_updated_at"`
	CareerDeletedAt gorm.DeletedAt `gorm:"column:career_deleted_at;index" json:"career_deleted_at,omitempty"`
}

func (CareerModel) TableName() string { return "careers" }
