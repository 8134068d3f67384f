// file: internals/features/academics/enrollments/dto/enrollment_dto.go
package dto

import (
	"github.com/google/uuid"

	model "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateCourseEnrollmentRequest struct {
	CourseEnrollmentPeriodID  uuid.UUID `json:"course_enrollment_period_id" validate:"required"`
	CourseEnrollmentStudentID uuid.UUID `json:"course_enrollment_student_id" validate:"required"`
	CourseEnrollmentGroupID   uuid.UUID `json:"course_enrollment_group_id" validate:"required"`
	CourseEnrollmentSubjectID uuid.UUID `json:"course_enrollment_subject_id" validate:"required"`
	CourseEnrollmentTeacherID uuid.UUID `json:"course_enrollment_teacher_id" validate:"required"`
}

func (r CreateCourseEnrollmentRequest) ToModel() model.CourseEnrollmentModel {
	return model.CourseEnrollmentModel{
		CourseEnrollmentPeriodID:  r.CourseEnrollmentPeriodID,
		CourseEnrollmentStudentID: r.CourseEnrollmentStudentID,
		CourseEnrollmentGroupID:   r.CourseEnrollmentGroupID,
		CourseEnrollmentSubjectID: r.CourseEnrollmentSubjectID,
		CourseEnrollmentTeacherID: r.CourseEnrollmentTeacherID,
		CourseEnrollmentActive:    true,
	}
}

type EnrollActivityRequest struct {
	ActivityEnrollmentPeriodID   uuid.UUID `json:"activity_enrollment_period_id" validate:"required"`
	ActivityEnrollmentStudentID  uuid.UUID `json:"activity_enrollment_student_id" validate:"required"`
	ActivityEnrollmentActivityID uuid.UUID `json:"activity_enrollment_activity_id" validate:"required"`
}

type BulkEnrollActivityRequest struct {
	ActivityEnrollmentPeriodID   uuid.UUID   `json:"activity_enrollment_period_id" validate:"required"`
	ActivityEnrollmentActivityID uuid.UUID   `json:"activity_enrollment_activity_id" validate:"required"`
	StudentIDs                   []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

// BulkEnrollItemResult: resultado por alumno; un fallo no aborta el lote.
type BulkEnrollItemResult struct {
	StudentID uuid.UUID `json:"student_id"`
	Status    string    `json:"status"` // inserted | reactivated | error
	Error     string    `json:"error,omitempty"`
}
