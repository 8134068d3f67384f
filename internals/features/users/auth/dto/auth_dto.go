// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"github.com/google/uuid"

	model "github.com/L20660042/Backend-Proy-sub000/internals/features/users/auth/model"
)

type RegisterRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email,max=120"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserFullName string `json:"user_full_name" validate:"required,max=120"`
	UserRole     string `json:"user_role" validate:"required,oneof=admin docente alumno"`

	UserTeacherID *uuid.UUID `json:"user_teacher_id" validate:"omitempty"`
	UserStudentID *uuid.UUID `json:"user_student_id" validate:"omitempty"`
}

func (r RegisterRequest) ToModel(hashedPassword string) model.UserModel {
	return model.UserModel{
		UserEmail:     r.UserEmail,
		UserPassword:  hashedPassword,
		UserFullName:  r.UserFullName,
		UserRole:      r.UserRole,
		UserTeacherID: r.UserTeacherID,
		UserStudentID: r.UserStudentID,
		UserActive:    true,
	}
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	User        model.UserModel `json:"user"`
}
