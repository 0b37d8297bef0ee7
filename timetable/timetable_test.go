package timetable

import (
	"testing"

	"institute/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWith(slots ...models.ScheduleSlot) []models.ScheduleSlot {
	return slots
}

func mondaySlot() models.ScheduleSlot {
	return models.ScheduleSlot{
		ID:          1,
		InstituteID: 1,
		Day:         "Mon",
		Time:        "09:00",
		Category:    "Dance",
		BatchNumber: "B1",
		TrainerID:   10,
		TrainerName: "T1",
	}
}

func TestValidDay(t *testing.T) {
	for _, d := range Days {
		assert.True(t, ValidDay(d), d)
	}
	assert.False(t, ValidDay("Monday"))
	assert.False(t, ValidDay(""))
}

func TestValidTime(t *testing.T) {
	for _, tm := range Times {
		assert.True(t, ValidTime(tm), tm)
	}
	assert.False(t, ValidTime("9:00"))
	assert.False(t, ValidTime("18:00"))
}

func TestFindConflictBatch(t *testing.T) {
	slots := storeWith(mondaySlot())

	// same batch, different trainer at the same cell
	conflict := FindConflict(slots, Candidate{Day: "Mon", Time: "09:00", BatchNumber: "B1", TrainerID: 20})
	require.NotNil(t, conflict)
	assert.Equal(t, BatchConflict, conflict.Kind)
	assert.Equal(t, "T1", conflict.TrainerName)
	assert.Equal(t, "Batch B1 already has a class on Mon at 09:00", conflict.Message())
}

func TestFindConflictTrainer(t *testing.T) {
	slots := storeWith(mondaySlot())

	// same trainer, different batch at the same cell
	conflict := FindConflict(slots, Candidate{Day: "Mon", Time: "09:00", BatchNumber: "B2", TrainerID: 10})
	require.NotNil(t, conflict)
	assert.Equal(t, TrainerConflict, conflict.Kind)
	assert.Equal(t, "B1", conflict.BatchNumber)
	assert.Equal(t, "Trainer is already assigned to another batch on Mon at 09:00", conflict.Message())
}

func TestFindConflictDifferentCell(t *testing.T) {
	slots := storeWith(mondaySlot())

	assert.Nil(t, FindConflict(slots, Candidate{Day: "Tue", Time: "09:00", BatchNumber: "B1", TrainerID: 10}))
	assert.Nil(t, FindConflict(slots, Candidate{Day: "Mon", Time: "10:00", BatchNumber: "B1", TrainerID: 10}))
}

func TestFindConflictExcludesSlotUnderEdit(t *testing.T) {
	slots := storeWith(mondaySlot())

	// resubmitting an unchanged slot must not conflict with itself
	cand := Candidate{Day: "Mon", Time: "09:00", BatchNumber: "B1", TrainerID: 10, ExcludeID: 1}
	assert.Nil(t, FindConflict(slots, cand))

	// but it still conflicts with other occupants of the cell
	other := mondaySlot()
	other.ID = 2
	other.BatchNumber = "B2"
	other.TrainerID = 20
	other.TrainerName = "T2"
	conflict := FindConflict(storeWith(mondaySlot(), other), Candidate{
		Day: "Mon", Time: "09:00", BatchNumber: "B2", TrainerID: 10, ExcludeID: 1,
	})
	require.NotNil(t, conflict)
	assert.Equal(t, BatchConflict, conflict.Kind)
	assert.Equal(t, uint(2), conflict.SlotID)
}

func TestFindConflictBatchWinsOverTrainer(t *testing.T) {
	// candidate matching both batch and trainer of the occupant reports the
	// batch conflict
	conflict := FindConflict(storeWith(mondaySlot()), Candidate{
		Day: "Mon", Time: "09:00", BatchNumber: "B1", TrainerID: 10,
	})
	require.NotNil(t, conflict)
	assert.Equal(t, BatchConflict, conflict.Kind)
}

func TestFindConflictIdempotent(t *testing.T) {
	slots := storeWith(mondaySlot())
	cand := Candidate{Day: "Mon", Time: "09:00", BatchNumber: "B1", TrainerID: 20}

	first := FindConflict(slots, cand)
	second := FindConflict(slots, cand)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestFindConflictEmptyStore(t *testing.T) {
	assert.Nil(t, FindConflict(nil, Candidate{Day: "Mon", Time: "09:00", BatchNumber: "B1", TrainerID: 10}))
}

func TestGridFor(t *testing.T) {
	second := mondaySlot()
	second.ID = 2
	second.BatchNumber = "B2"
	second.TrainerID = 20

	wed := mondaySlot()
	wed.ID = 3
	wed.Day = "Wed"
	wed.Time = "14:00"

	grid := GridFor(storeWith(mondaySlot(), second, wed))

	// every cell exists
	assert.Len(t, grid, len(Days))
	for _, day := range Days {
		assert.Len(t, grid[day], len(Times))
	}

	// a cell may hold several batches
	assert.Len(t, grid["Mon"]["09:00"], 2)
	assert.Len(t, grid["Wed"]["14:00"], 1)
	assert.Empty(t, grid["Sun"]["17:00"])
}

func TestRenderWeekImage(t *testing.T) {
	png, err := RenderWeekImage(storeWith(mondaySlot()))
	require.NoError(t, err)
	// PNG magic bytes
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
