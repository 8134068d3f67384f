package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	enrollModel "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/enrollments/model"
	ttModel "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/model"
	"github.com/L20660042/Backend-Proy-sub000/internals/helpers/timeutil"
)

type fakeEnrollmentReader struct {
	triples     []enrollModel.ClassTriple
	activityIDs []uuid.UUID
}

func (f *fakeEnrollmentReader) FindActiveCourseTriples(_, _ uuid.UUID) ([]enrollModel.ClassTriple, error) {
	return f.triples, nil
}

func (f *fakeEnrollmentReader) FindActiveActivityIDs(_, _ uuid.UUID) ([]uuid.UUID, error) {
	return f.activityIDs, nil
}

type fakeBlockReader struct {
	byActivity map[uuid.UUID][]ttModel.TimetableBlockModel
	byTriple   map[enrollModel.ClassTriple][]ttModel.TimetableBlockModel
}

func (f *fakeBlockReader) ActivityBlocks(_ uuid.UUID, activityIDs []uuid.UUID) ([]ttModel.TimetableBlockModel, error) {
	var out []ttModel.TimetableBlockModel
	for _, id := range activityIDs {
		out = append(out, f.byActivity[id]...)
	}
	return out, nil
}

func (f *fakeBlockReader) ClassBlocks(_ uuid.UUID, t enrollModel.ClassTriple) ([]ttModel.TimetableBlockModel, error) {
	return f.byTriple[t], nil
}

func mkActivityBlock(t *testing.T, day int, start, end string) ttModel.TimetableBlockModel {
	t.Helper()
	sm, err := timeutil.ParseMinutes(start)
	require.NoError(t, err)
	em, err := timeutil.ParseMinutes(end)
	require.NoError(t, err)
	act := uuid.New()
	return ttModel.TimetableBlockModel{
		TimetableBlockID:           uuid.New(),
		TimetableBlockKind:         ttModel.BlockKindExtracurricular,
		TimetableBlockDeliveryMode: ttModel.DeliveryInPerson,
		TimetableBlockDayOfWeek:    day,
		TimetableBlockStartTime:    start,
		TimetableBlockEndTime:      end,
		TimetableBlockStartMin:     sm,
		TimetableBlockEndMin:       em,
		TimetableBlockActivityID:   &act,
	}
}

func mkClassBlock(t *testing.T, day int, start, end string, labels datatypes.JSONMap) ttModel.TimetableBlockModel {
	t.Helper()
	sm, err := timeutil.ParseMinutes(start)
	require.NoError(t, err)
	em, err := timeutil.ParseMinutes(end)
	require.NoError(t, err)
	return ttModel.TimetableBlockModel{
		TimetableBlockID:           uuid.New(),
		TimetableBlockKind:         ttModel.BlockKindClass,
		TimetableBlockDeliveryMode: ttModel.DeliveryInPerson,
		TimetableBlockDayOfWeek:    day,
		TimetableBlockStartTime:    start,
		TimetableBlockEndTime:      end,
		TimetableBlockStartMin:     sm,
		TimetableBlockEndMin:       em,
		TimetableBlockLabels:       labels,
	}
}

func TestFindStudentClashOverlapSameDay(t *testing.T) {
	// Soccer martes 16:00-18:00 vs Matemáticas martes 17:00-18:00
	soccer := mkActivityBlock(t, 2, "16:00", "18:00")
	math := mkClassBlock(t, 2, "17:00", "18:00",
		datatypes.JSONMap{"subject_name": "Matemáticas", "group_name": "G1"})

	clash := findStudentClash(
		[]ttModel.TimetableBlockModel{soccer},
		[]ttModel.TimetableBlockModel{math},
	)
	require.NotNil(t, clash)
	assert.Equal(t, "Matemáticas (G1)", clash.ConflictingLabel)
	assert.Equal(t, "17:00-18:00", clash.TimeRange)
	assert.Equal(t, 2, clash.DayOfWeek)
	assert.Contains(t, clash.Error(), "Matemáticas")
}

func TestFindStudentClashDifferentDayNoClash(t *testing.T) {
	soccer := mkActivityBlock(t, 2, "16:00", "18:00")
	math := mkClassBlock(t, 3, "16:00", "18:00", nil)

	assert.Nil(t, findStudentClash(
		[]ttModel.TimetableBlockModel{soccer},
		[]ttModel.TimetableBlockModel{math},
	))
}

func TestFindStudentClashTouchingBoundaryNoClash(t *testing.T) {
	soccer := mkActivityBlock(t, 2, "16:00", "18:00")
	math := mkClassBlock(t, 2, "18:00", "19:00", nil)

	assert.Nil(t, findStudentClash(
		[]ttModel.TimetableBlockModel{soccer},
		[]ttModel.TimetableBlockModel{math},
	))
}

func TestFindStudentClashAgainstOtherActivity(t *testing.T) {
	soccer := mkActivityBlock(t, 5, "16:00", "18:00")
	chess := mkActivityBlock(t, 5, "17:30", "19:00")
	chess.TimetableBlockLabels = datatypes.JSONMap{"activity_name": "Ajedrez"}

	clash := findStudentClash(
		[]ttModel.TimetableBlockModel{soccer},
		[]ttModel.TimetableBlockModel{chess},
	)
	require.NotNil(t, clash)
	assert.Equal(t, "Ajedrez", clash.ConflictingLabel)
}

func TestFindStudentClashEmptyExisting(t *testing.T) {
	soccer := mkActivityBlock(t, 2, "16:00", "18:00")
	assert.Nil(t, findStudentClash([]ttModel.TimetableBlockModel{soccer}, nil))
}

func TestValidateActivityWithoutBlocksRejected(t *testing.T) {
	activityID := uuid.New()
	triple := enrollModel.ClassTriple{GroupID: uuid.New(), SubjectID: uuid.New(), TeacherID: uuid.New()}

	// el alumno sí tiene clases, pero la actividad candidata no tiene bloques:
	// se rechaza antes de mirar el horario del alumno
	guard := &ActivityGuardService{
		Enrollments: &fakeEnrollmentReader{triples: []enrollModel.ClassTriple{triple}},
		Blocks: &fakeBlockReader{
			byTriple: map[enrollModel.ClassTriple][]ttModel.TimetableBlockModel{
				triple: {mkClassBlock(t, 1, "08:00", "09:00", nil)},
			},
		},
	}

	err := guard.ValidateActivityEnrollment(uuid.New(), uuid.New(), activityID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrActivityWithoutSchedule))
}

func TestValidateLegacyModalityClassStillBlocks(t *testing.T) {
	activityID := uuid.New()
	triple := enrollModel.ClassTriple{GroupID: uuid.New(), SubjectID: uuid.New(), TeacherID: uuid.New()}

	// fila legacy: la modalidad almacenada viene como texto libre y aun así
	// cuenta como presencial para el guard
	legacy := mkClassBlock(t, 2, "17:00", "18:00",
		datatypes.JSONMap{"subject_name": "Matemáticas", "group_name": "G1"})
	legacy.TimetableBlockDeliveryMode = ttModel.DeliveryMode("Presencial")

	guard := &ActivityGuardService{
		Enrollments: &fakeEnrollmentReader{triples: []enrollModel.ClassTriple{triple}},
		Blocks: &fakeBlockReader{
			byActivity: map[uuid.UUID][]ttModel.TimetableBlockModel{
				activityID: {mkActivityBlock(t, 2, "16:00", "18:00")},
			},
			byTriple: map[enrollModel.ClassTriple][]ttModel.TimetableBlockModel{
				triple: {legacy},
			},
		},
	}

	err := guard.ValidateActivityEnrollment(uuid.New(), uuid.New(), activityID)
	var clash *ScheduleConflictError
	require.ErrorAs(t, err, &clash)
	assert.Equal(t, "Matemáticas (G1)", clash.ConflictingLabel)
}

func TestValidateNonPhysicalClassDoesNotBlock(t *testing.T) {
	activityID := uuid.New()
	triple := enrollModel.ClassTriple{GroupID: uuid.New(), SubjectID: uuid.New(), TeacherID: uuid.New()}

	hybrid := mkClassBlock(t, 2, "16:00", "18:00", nil)
	hybrid.TimetableBlockDeliveryMode = ttModel.DeliveryHybrid

	guard := &ActivityGuardService{
		Enrollments: &fakeEnrollmentReader{triples: []enrollModel.ClassTriple{triple}},
		Blocks: &fakeBlockReader{
			byActivity: map[uuid.UUID][]ttModel.TimetableBlockModel{
				activityID: {mkActivityBlock(t, 2, "16:00", "18:00")},
			},
			byTriple: map[enrollModel.ClassTriple][]ttModel.TimetableBlockModel{
				triple: {hybrid},
			},
		},
	}

	assert.NoError(t, guard.ValidateActivityEnrollment(uuid.New(), uuid.New(), activityID))
}

func TestValidateOtherActivityExcludesCandidateItself(t *testing.T) {
	activityID := uuid.New()

	// la única inscripción activa es a la misma actividad candidata
	// (reactivación): sus propios bloques no deben empalmarse consigo mismos
	guard := &ActivityGuardService{
		Enrollments: &fakeEnrollmentReader{activityIDs: []uuid.UUID{activityID}},
		Blocks: &fakeBlockReader{
			byActivity: map[uuid.UUID][]ttModel.TimetableBlockModel{
				activityID: {mkActivityBlock(t, 2, "16:00", "18:00")},
			},
		},
	}

	assert.NoError(t, guard.ValidateActivityEnrollment(uuid.New(), uuid.New(), activityID))
}
