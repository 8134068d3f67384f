// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;type:varchar(100);not null" json:"-"`
	UserFullName string    `gorm:"column:user_full_name;type:varchar(120);not null" json:"user_full_name"`

	// admin | docente | alumno
	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'alumno'" json:"user_role"`

	// identidad académica vinculada según el rol
	UserTeacherID *uuid.UUID `gorm:"column:user_teacher_id;type:uuid" json:"user_teacher_id,omitempty"`
	UserStudentID *uuid.UUID `gorm:"column:user_student_id;type:uuid" json:"user_student_id,omitempty"`

	UserActive bool `gorm:"column:user_active;not null;default:true" json:"user_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
