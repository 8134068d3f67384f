package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "github.com/L20660042/Backend-Proy-sub000/internals/features/academics/timetable/model"
)

func TestSortBlocksByDayThenStart(t *testing.T) {
	blocks := []model.TimetableBlockModel{
		mkBlock(t, 3, "08:00", "09:00", model.DeliveryInPerson),
		mkBlock(t, 1, "10:00", "11:00", model.DeliveryInPerson),
		mkBlock(t, 1, "08:00", "09:00", model.DeliveryInPerson),
		mkBlock(t, 2, "07:00", "08:00", model.DeliveryInPerson),
		mkBlock(t, 1, "09:00", "10:00", model.DeliveryInPerson),
	}

	SortBlocks(blocks)

	type slot struct {
		day   int
		start string
	}
	got := make([]slot, len(blocks))
	for i, b := range blocks {
		got[i] = slot{b.TimetableBlockDayOfWeek, b.TimetableBlockStartTime}
	}
	want := []slot{
		{1, "08:00"},
		{1, "09:00"},
		{1, "10:00"},
		{2, "07:00"},
		{3, "08:00"},
	}
	assert.Equal(t, want, got)
}

func TestSortBlocksZeroPaddedStringsCompareCorrectly(t *testing.T) {
	// "09:00" < "10:00" como string solo si van zero-padded; el modelo
	// canonicaliza en BeforeSave, aquí validamos el supuesto del orden.
	blocks := []model.TimetableBlockModel{
		mkBlock(t, 1, "10:00", "11:00", model.DeliveryInPerson),
		mkBlock(t, 1, "09:00", "10:00", model.DeliveryInPerson),
	}
	SortBlocks(blocks)
	assert.Equal(t, "09:00", blocks[0].TimetableBlockStartTime)
}
