package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/model"
)

func uuidptr(id uuid.UUID) *uuid.UUID { return &id }

func strptr(s string) *string { return &s }

func intptr(i int) *int { return &i }

func validClassCreate() CreateTimetableBlockRequest {
	return CreateTimetableBlockRequest{
		TimetableBlockPeriodID:  uuid.New(),
		TimetableBlockKind:      "class",
		TimetableBlockDayOfWeek: 1,
		TimetableBlockStartTime: "08:00",
		TimetableBlockEndTime:   "09:00",
		TimetableBlockGroupID:   uuidptr(uuid.New()),
		TimetableBlockSubjectID: uuidptr(uuid.New()),
		TimetableBlockTeacherID: uuidptr(uuid.New()),
	}
}

func TestCreateClassToModel(t *testing.T) {
	req := validClassCreate()
	req.TimetableBlockDeliveryMode = strptr("Semi-Presencial")

	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, model.BlockKindClass, m.TimetableBlockKind)
	assert.Equal(t, model.DeliveryHybrid, m.TimetableBlockDeliveryMode)
	assert.Equal(t, 480, m.TimetableBlockStartMin)
	assert.Equal(t, 540, m.TimetableBlockEndMin)
}

func TestCreateClassRequiresAllActors(t *testing.T) {
	req := validClassCreate()
	req.TimetableBlockTeacherID = nil
	_, err := req.ToModel()
	assert.ErrorIs(t, err, ErrMissingClassActors)
}

func TestCreateExtracurricularForcesInPerson(t *testing.T) {
	req := CreateTimetableBlockRequest{
		TimetableBlockPeriodID:     uuid.New(),
		TimetableBlockKind:         "extracurricular",
		TimetableBlockDayOfWeek:    2,
		TimetableBlockStartTime:    "16:00",
		TimetableBlockEndTime:      "18:00",
		TimetableBlockActivityID:   uuidptr(uuid.New()),
		TimetableBlockDeliveryMode: strptr("virtual"), // el caller intenta otro modo
	}
	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryInPerson, m.TimetableBlockDeliveryMode)
}

func TestCreateExtracurricularRequiresActivity(t *testing.T) {
	req := CreateTimetableBlockRequest{
		TimetableBlockPeriodID:  uuid.New(),
		TimetableBlockKind:      "extracurricular",
		TimetableBlockDayOfWeek: 2,
		TimetableBlockStartTime: "16:00",
		TimetableBlockEndTime:   "18:00",
	}
	_, err := req.ToModel()
	assert.ErrorIs(t, err, ErrMissingActivity)
}

func TestCreateRejectsInvertedTimeRange(t *testing.T) {
	req := validClassCreate()
	req.TimetableBlockStartTime = "10:00"
	req.TimetableBlockEndTime = "09:00"
	_, err := req.ToModel()
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	req.TimetableBlockEndTime = "10:00" // duración cero
	_, err = req.ToModel()
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateRejectsMixedActors(t *testing.T) {
	req := validClassCreate()
	req.TimetableBlockActivityID = uuidptr(uuid.New())
	_, err := req.ToModel()
	assert.ErrorIs(t, err, ErrMixedActors)
}

func TestCreateCanonicalizesTimes(t *testing.T) {
	req := validClassCreate()
	req.TimetableBlockStartTime = "8:00"
	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "08:00", m.TimetableBlockStartTime)
}

func storedClassBlock(t *testing.T) model.TimetableBlockModel {
	t.Helper()
	m, err := validClassCreate().ToModel()
	require.NoError(t, err)
	m.TimetableBlockID = uuid.New()
	return m
}

func TestApplyToMergesOverStored(t *testing.T) {
	stored := storedClassBlock(t)

	upd := UpdateTimetableBlockRequest{
		TimetableBlockRoom: strptr("B-202"),
	}
	merged, err := upd.ApplyTo(stored)
	require.NoError(t, err)

	// campo enviado cambia; el resto conserva el valor almacenado
	require.NotNil(t, merged.TimetableBlockRoom)
	assert.Equal(t, "B-202", *merged.TimetableBlockRoom)
	assert.Equal(t, stored.TimetableBlockStartTime, merged.TimetableBlockStartTime)
	assert.Equal(t, stored.TimetableBlockTeacherID, merged.TimetableBlockTeacherID)

	// merge inmutable: stored intacto
	assert.Nil(t, stored.TimetableBlockRoom)
}

func TestApplyToRevalidatesMergedTuple(t *testing.T) {
	stored := storedClassBlock(t)

	// solo cambia la hora de fin: debe validarse contra la de inicio almacenada
	upd := UpdateTimetableBlockRequest{
		TimetableBlockEndTime: strptr("07:00"),
	}
	_, err := upd.ApplyTo(stored)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestApplyToEmptyRoomClearsIt(t *testing.T) {
	stored := storedClassBlock(t)
	stored.TimetableBlockRoom = strptr("A-101")

	upd := UpdateTimetableBlockRequest{TimetableBlockRoom: strptr("")}
	merged, err := upd.ApplyTo(stored)
	require.NoError(t, err)
	assert.Nil(t, merged.TimetableBlockRoom)
}

func TestApplyToNormalizesDeliveryMode(t *testing.T) {
	stored := storedClassBlock(t)

	upd := UpdateTimetableBlockRequest{TimetableBlockDeliveryMode: strptr("ASÍNCRONO")}
	merged, err := upd.ApplyTo(stored)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryAsynchronous, merged.TimetableBlockDeliveryMode)
}

func TestApplyToRejectsKindChange(t *testing.T) {
	stored := storedClassBlock(t)

	upd := UpdateTimetableBlockRequest{
		TimetableBlockKind: strptr("extracurricular"),
	}
	_, err := upd.ApplyTo(stored)
	assert.ErrorIs(t, err, ErrKindImmutable)
}

func TestApplyToSameKindIsAccepted(t *testing.T) {
	stored := storedClassBlock(t)

	// reenviar el mismo tipo no es un cambio
	upd := UpdateTimetableBlockRequest{
		TimetableBlockKind: strptr("class"),
		TimetableBlockRoom: strptr("C-303"),
	}
	merged, err := upd.ApplyTo(stored)
	require.NoError(t, err)
	assert.Equal(t, model.BlockKindClass, merged.TimetableBlockKind)
}

func TestChangesOnlyIncludesSuppliedColumns(t *testing.T) {
	stored := storedClassBlock(t)

	upd := UpdateTimetableBlockRequest{
		TimetableBlockDayOfWeek: intptr(4),
		TimetableBlockStartTime: strptr("9:00"),
		TimetableBlockEndTime:   strptr("10:30"),
	}
	merged, err := upd.ApplyTo(stored)
	require.NoError(t, err)

	ch := upd.Changes(merged)
	assert.Equal(t, 4, ch["timetable_block_day_of_week"])
	assert.Equal(t, "09:00", ch["timetable_block_start_time"])
	assert.Equal(t, 540, ch["timetable_block_start_min"])
	assert.Equal(t, 630, ch["timetable_block_end_min"])
	assert.NotContains(t, ch, "timetable_block_room")
	assert.NotContains(t, ch, "timetable_block_teacher_id")
}
