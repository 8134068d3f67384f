// file: internals/features/academics/catalog/dto/catalog_dto.go
package dto

import (
	"github.com/google/uuid"

	model "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/catalog/model"
)

type CreatePeriodRequest struct {
	PeriodName   string `json:"period_name" validate:"required,max=40"`
	PeriodActive bool   `json:"period_active"`
}

func (r CreatePeriodRequest) ToModel() model.PeriodModel {
	return model.PeriodModel{
		PeriodName:   r.PeriodName,
		PeriodActive: r.PeriodActive,
	}
}

type CreateCareerRequest struct {
	CareerName string `json:"career_name" validate:"required,max=120"`
	CareerCode string `json:"career_code" validate:"required,max=20"`
}

func (r CreateCareerRequest) ToModel() model.CareerModel {
	return model.CareerModel{
		CareerName: r.CareerName,
		CareerCode: r.CareerCode,
	}
}

type CreateGroupRequest struct {
	GroupPeriodID uuid.UUID `json:"group_period_id" validate:"required"`
	GroupCareerID uuid.UUID `json:"group_career_id" validate:"required"`
	GroupName     string    `json:"group_name" validate:"required,max=40"`
	GroupSemester int       `json:"group_semester" validate:"omitempty,min=1,max=14"`
}

func (r CreateGroupRequest) ToModel() model.GroupModel {
	sem := r.GroupSemester
	if sem == 0 {
		sem = 1
	}
	return model.GroupModel{
		GroupPeriodID: r.GroupPeriodID,
		GroupCareerID: r.GroupCareerID,
		GroupName:     r.GroupName,
		GroupSemester: sem,
	}
}

type CreateSubjectRequest struct {
	SubjectCareerID uuid.UUID `json:"subject_career_id" validate:"required"`
	SubjectName     string    `json:"subject_name" validate:"required,max=120"`
	SubjectCode     string    `json:"subject_code" validate:"required,max=20"`
	SubjectCredits  int       `json:"subject_credits" validate:"omitempty,min=0,max=30"`
}

func (r CreateSubjectRequest) ToModel() model.SubjectModel {
	return model.SubjectModel{
		SubjectCareerID: r.SubjectCareerID,
		SubjectName:     r.SubjectName,
		SubjectCode:     r.SubjectCode,
		SubjectCredits:  r.SubjectCredits,
	}
}

type CreateActivityRequest struct {
	ActivityPeriodID uuid.UUID `json:"activity_period_id" validate:"required"`
	ActivityName     string    `json:"activity_name" validate:"required,max=120"`
	ActivityKind     string    `json:"activity_kind" validate:"omitempty,max=40"`
	ActivityQuota    int       `json:"activity_quota" validate:"omitempty,min=0"`
}

func (r CreateActivityRequest) ToModel() model.ActivityModel {
	kind := r.ActivityKind
	if kind == "" {
		kind = "deportiva"
	}
	return model.ActivityModel{
		ActivityPeriodID: r.ActivityPeriodID,
		ActivityName:     r.ActivityName,
		ActivityKind:     kind,
		ActivityQuota:    r.ActivityQuota,
	}
}

type CreateClassAssignmentRequest struct {
	ClassAssignmentPeriodID  uuid.UUID `json:"class_assignment_period_id" validate:"required"`
	ClassAssignmentCareerID  uuid.UUID `json:"class_assignment_career_id" validate:"required"`
	ClassAssignmentGroupID   uuid.UUID `json:"class_assignment_group_id" validate:"required"`
	ClassAssignmentSubjectID uuid.UUID `json:"class_assignment_subject_id" validate:"required"`
	ClassAssignmentTeacherID uuid.UUID `json:"class_assignment_teacher_id" validate:"required"`
}

func (r CreateClassAssignmentRequest) ToModel() model.ClassAssignmentModel {
	return model.ClassAssignmentModel{
		ClassAssignmentPeriodID:  r.ClassAssignmentPeriodID,
		ClassAssignmentCareerID:  r.ClassAssignmentCareerID,
		ClassAssignmentGroupID:   r.ClassAssignmentGroupID,
		ClassAssignmentSubjectID: r.ClassAssignmentSubjectID,
		ClassAssignmentTeacherID: r.ClassAssignmentTeacherID,
	}
}
