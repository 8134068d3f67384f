package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	model "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/model"
	"github.com/L20660042/Backend-Proy-sub000/internals/helpers/timeutil"
)

func strptr(s string) *string { return &s }

func uuidptr(id uuid.UUID) *uuid.UUID { return &id }

func mkBlock(t *testing.T, day int, start, end string, mode model.DeliveryMode) model.TimetableBlockModel {
	t.Helper()
	sm, err := timeutil.ParseMinutes(start)
	require.NoError(t, err)
	em, err := timeutil.ParseMinutes(end)
	require.NoError(t, err)
	return model.TimetableBlockModel{
		TimetableBlockID:           uuid.New(),
		TimetableBlockPeriodID:     uuid.New(),
		TimetableBlockKind:         model.BlockKindClass,
		TimetableBlockDeliveryMode: mode,
		TimetableBlockDayOfWeek:    day,
		TimetableBlockStartTime:    start,
		TimetableBlockEndTime:      end,
		TimetableBlockStartMin:     sm,
		TimetableBlockEndMin:       em,
	}
}

func TestTeacherConflictInPerson(t *testing.T) {
	teacher := uuid.New()

	existing := mkBlock(t, 1, "08:00", "09:00", model.DeliveryInPerson)
	existing.TimetableBlockTeacherID = uuidptr(teacher)
	existing.TimetableBlockLabels = datatypes.JSONMap{"subject_name": "Matemáticas", "group_name": "G1"}

	cand := mkBlock(t, 1, "08:30", "09:30", model.DeliveryInPerson)
	cand.TimetableBlockTeacherID = uuidptr(teacher)

	c := findConflict(&cand, []model.TimetableBlockModel{existing}, uuid.Nil)
	require.NotNil(t, c)
	assert.Equal(t, ConflictTeacher, c.Kind)
	assert.Equal(t, "08:00-09:00", c.TimeRange)
	assert.Contains(t, c.Error(), "docente")
	assert.Contains(t, c.Error(), "08:00-09:00")
}

func TestAsynchronousNeverConflictsOnTeacherOrRoom(t *testing.T) {
	teacher := uuid.New()

	existing := mkBlock(t, 1, "08:00", "09:00", model.DeliveryAsynchronous)
	existing.TimetableBlockTeacherID = uuidptr(teacher)
	existing.TimetableBlockRoom = strptr("A-101")

	// existente asíncrono ⇒ el candidato presencial pasa
	cand := mkBlock(t, 1, "08:30", "09:30", model.DeliveryInPerson)
	cand.TimetableBlockTeacherID = uuidptr(teacher)
	cand.TimetableBlockRoom = strptr("A-101")
	assert.Nil(t, findConflict(&cand, []model.TimetableBlockModel{existing}, uuid.Nil))

	// candidato asíncrono ⇒ pasa contra cualquier existente
	existing2 := mkBlock(t, 1, "08:00", "09:00", model.DeliveryInPerson)
	existing2.TimetableBlockTeacherID = uuidptr(teacher)
	existing2.TimetableBlockRoom = strptr("A-101")

	candAsync := mkBlock(t, 1, "08:00", "09:00", model.DeliveryAsynchronous)
	candAsync.TimetableBlockTeacherID = uuidptr(teacher)
	candAsync.TimetableBlockRoom = strptr("A-101")
	assert.Nil(t, findConflict(&candAsync, []model.TimetableBlockModel{existing2}, uuid.Nil))
}

func TestHybridStillConflictsOnTeacherAndRoom(t *testing.T) {
	teacher := uuid.New()

	existing := mkBlock(t, 2, "10:00", "12:00", model.DeliveryInPerson)
	existing.TimetableBlockTeacherID = uuidptr(teacher)

	cand := mkBlock(t, 2, "11:00", "13:00", model.DeliveryHybrid)
	cand.TimetableBlockTeacherID = uuidptr(teacher)

	c := findConflict(&cand, []model.TimetableBlockModel{existing}, uuid.Nil)
	require.NotNil(t, c)
	assert.Equal(t, ConflictTeacher, c.Kind)
}

func TestHybridGroupOverlapDoesNotConflict(t *testing.T) {
	group := uuid.New()

	existing := mkBlock(t, 3, "08:00", "10:00", model.DeliveryHybrid)
	existing.TimetableBlockGroupID = uuidptr(group)

	cand := mkBlock(t, 3, "09:00", "11:00", model.DeliveryHybrid)
	cand.TimetableBlockGroupID = uuidptr(group)

	// híbrido × híbrido del mismo grupo no consume el tiempo físico del grupo
	assert.Nil(t, findConflict(&cand, []model.TimetableBlockModel{existing}, uuid.Nil))

	// híbrido × presencial tampoco dispara la regla de grupo
	cand.TimetableBlockDeliveryMode = model.DeliveryInPerson
	assert.Nil(t, findConflict(&cand, []model.TimetableBlockModel{existing}, uuid.Nil))
}

func TestGroupConflictInPersonByInPerson(t *testing.T) {
	group := uuid.New()

	existing := mkBlock(t, 3, "08:00", "10:00", model.DeliveryInPerson)
	existing.TimetableBlockGroupID = uuidptr(group)

	cand := mkBlock(t, 3, "09:00", "11:00", model.DeliveryInPerson)
	cand.TimetableBlockGroupID = uuidptr(group)

	c := findConflict(&cand, []model.TimetableBlockModel{existing}, uuid.Nil)
	require.NotNil(t, c)
	assert.Equal(t, ConflictGroup, c.Kind)
}

func TestRoomConflictCaseSensitiveExactMatch(t *testing.T) {
	existing := mkBlock(t, 4, "08:00", "09:00", model.DeliveryInPerson)
	existing.TimetableBlockRoom = strptr("Lab-1")

	cand := mkBlock(t, 4, "08:30", "09:30", model.DeliveryHybrid)
	cand.TimetableBlockRoom = strptr("Lab-1")

	c := findConflict(&cand, []model.TimetableBlockModel{existing}, uuid.Nil)
	require.NotNil(t, c)
	assert.Equal(t, ConflictRoom, c.Kind)

	// match exacto: distinta capitalización es otra aula
	cand.TimetableBlockRoom = strptr("lab-1")
	assert.Nil(t, findConflict(&cand, []model.TimetableBlockModel{existing}, uuid.Nil))
}

func TestTouchingBoundaryIsNotConflict(t *testing.T) {
	teacher := uuid.New()

	existing := mkBlock(t, 1, "08:00", "09:00", model.DeliveryInPerson)
	existing.TimetableBlockTeacherID = uuidptr(teacher)

	cand := mkBlock(t, 1, "09:00", "10:00", model.DeliveryInPerson)
	cand.TimetableBlockTeacherID = uuidptr(teacher)

	assert.Nil(t, findConflict(&cand, []model.TimetableBlockModel{existing}, uuid.Nil))
}

func TestDifferentActorsNoConflict(t *testing.T) {
	existing := mkBlock(t, 1, "08:00", "09:00", model.DeliveryInPerson)
	existing.TimetableBlockTeacherID = uuidptr(uuid.New())
	existing.TimetableBlockGroupID = uuidptr(uuid.New())
	existing.TimetableBlockRoom = strptr("A-1")

	cand := mkBlock(t, 1, "08:00", "09:00", model.DeliveryInPerson)
	cand.TimetableBlockTeacherID = uuidptr(uuid.New())
	cand.TimetableBlockGroupID = uuidptr(uuid.New())
	cand.TimetableBlockRoom = strptr("A-2")

	assert.Nil(t, findConflict(&cand, []model.TimetableBlockModel{existing}, uuid.Nil))
}

func TestCandidatePredicatesPureAsyncHasNone(t *testing.T) {
	cand := mkBlock(t, 1, "08:00", "09:00", model.DeliveryAsynchronous)
	cand.TimetableBlockTeacherID = uuidptr(uuid.New())
	cand.TimetableBlockGroupID = uuidptr(uuid.New())
	cand.TimetableBlockRoom = strptr("A-1")

	conds, args := candidatePredicates(&cand)
	assert.Empty(t, conds)
	assert.Empty(t, args)
}

func TestCandidatePredicatesHybridSkipsGroup(t *testing.T) {
	cand := mkBlock(t, 1, "08:00", "09:00", model.DeliveryHybrid)
	cand.TimetableBlockTeacherID = uuidptr(uuid.New())
	cand.TimetableBlockGroupID = uuidptr(uuid.New())
	cand.TimetableBlockRoom = strptr("A-1")

	conds, _ := candidatePredicates(&cand)
	// docente + aula sí; grupo no (solo aplica en presencial)
	assert.Len(t, conds, 2)
}

func TestUpdateOverOwnSlotDoesNotConflict(t *testing.T) {
	teacher := uuid.New()
	group := uuid.New()

	stored := mkBlock(t, 1, "08:00", "09:00", model.DeliveryInPerson)
	stored.TimetableBlockTeacherID = uuidptr(teacher)
	stored.TimetableBlockGroupID = uuidptr(group)
	stored.TimetableBlockRoom = strptr("A-101")

	// re-guardar el bloque con su mismo horario y actores: el propio id
	// queda fuera del barrido y no debe dispararse ninguna regla
	cand := stored
	assert.Nil(t, findConflict(&cand, []model.TimetableBlockModel{stored}, stored.TimetableBlockID))

	// sin exclusión, el mismo tuple sí es empalme (sanidad del escenario)
	c := findConflict(&cand, []model.TimetableBlockModel{stored}, uuid.Nil)
	require.NotNil(t, c)
	assert.Equal(t, ConflictTeacher, c.Kind)
}

func TestLegacyStoredModalityIsNormalized(t *testing.T) {
	teacher := uuid.New()

	// fila legacy con modalidad sin normalizar
	existing := mkBlock(t, 1, "08:00", "09:00", model.DeliveryMode("Asíncrono"))
	existing.TimetableBlockTeacherID = uuidptr(teacher)

	cand := mkBlock(t, 1, "08:30", "09:30", model.DeliveryInPerson)
	cand.TimetableBlockTeacherID = uuidptr(teacher)

	assert.Nil(t, findConflict(&cand, []model.TimetableBlockModel{existing}, uuid.Nil))
}
