// file: internals/features/academics/enrollments/controller/activity_enrollment_controller_test.go
package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svc "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/service"
)

func TestBulkEnrollIsolatesFailures(t *testing.T) {
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()

	// el segundo alumno empalma; los otros dos deben quedar inscritos
	results := bulkEnrollResults([]uuid.UUID{s1, s2, s3}, func(studentID uuid.UUID) (string, error) {
		if studentID == s2 {
			return "", &svc.ScheduleConflictError{
				ConflictingLabel: "Matemáticas (G1)",
				TimeRange:        "17:00-18:00",
				DayOfWeek:        2,
				CandidateRange:   "16:00-18:00",
			}
		}
		return "inserted", nil
	})

	require.Len(t, results, 3)

	assert.Equal(t, s1, results[0].StudentID)
	assert.Equal(t, "inserted", results[0].Status)
	assert.Empty(t, results[0].Error)

	assert.Equal(t, s2, results[1].StudentID)
	assert.Equal(t, "error", results[1].Status)
	assert.Contains(t, results[1].Error, "empalme")
	assert.Contains(t, results[1].Error, "Matemáticas")

	assert.Equal(t, s3, results[2].StudentID)
	assert.Equal(t, "inserted", results[2].Status)
}

func TestBulkEnrollReactivationReported(t *testing.T) {
	s1 := uuid.New()
	results := bulkEnrollResults([]uuid.UUID{s1}, func(uuid.UUID) (string, error) {
		return "reactivated", nil
	})
	require.Len(t, results, 1)
	assert.Equal(t, "reactivated", results[0].Status)
}

func guardErrorStatus(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New()
	app.Post("/x", func(c *fiber.Ctx) error {
		return writeGuardError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest("POST", "/x", nil))
	require.NoError(t, reqErr)
	return resp.StatusCode
}

func TestWriteGuardErrorAlreadyEnrolledIsConflict(t *testing.T) {
	assert.Equal(t, fiber.StatusConflict, guardErrorStatus(t, svc.ErrAlreadyEnrolled))
}

func TestWriteGuardErrorScheduleClashIsConflict(t *testing.T) {
	assert.Equal(t, fiber.StatusConflict, guardErrorStatus(t, &svc.ScheduleConflictError{
		ConflictingLabel: "Ajedrez",
		TimeRange:        "16:00-17:00",
	}))
}

func TestWriteGuardErrorActivityWithoutScheduleIsUnprocessable(t *testing.T) {
	assert.Equal(t, fiber.StatusUnprocessableEntity, guardErrorStatus(t, svc.ErrActivityWithoutSchedule))
}
