package timetable

import (
	"testing"

	"institute/database"
	"institute/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // keep the single in-memory database alive

	require.NoError(t, database.Migrate(db))
	return db
}

func seedSlot(t *testing.T, db *gorm.DB, instituteID uint, day, tm, batch string, trainerID uint, studentIDs ...uint) models.ScheduleSlot {
	t.Helper()

	slot := models.ScheduleSlot{
		InstituteID: instituteID,
		Day:         day,
		Time:        tm,
		Category:    "Dance",
		BatchNumber: batch,
		TrainerID:   trainerID,
		TrainerName: "T",
	}
	for _, id := range studentIDs {
		slot.Students = append(slot.Students, models.SlotStudent{StudentID: id})
	}
	require.NoError(t, CreateSlot(db, &slot))
	return slot
}

func TestLoadSlotsScopedAndOrdered(t *testing.T) {
	db := newTestDB(t)

	first := seedSlot(t, db, 1, "Mon", "09:00", "B1", 10, 100, 101)
	second := seedSlot(t, db, 1, "Tue", "10:00", "B2", 20)
	seedSlot(t, db, 2, "Mon", "09:00", "B1", 10) // other institute

	slots, err := LoadSlots(db, 1)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, first.ID, slots[0].ID)
	assert.Equal(t, second.ID, slots[1].ID)
	assert.Len(t, slots[0].Students, 2)
}

func TestCreateSlotBatchIndexRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	seedSlot(t, db, 1, "Mon", "09:00", "B1", 10)

	dup := models.ScheduleSlot{
		InstituteID: 1, Day: "Mon", Time: "09:00",
		Category: "Yoga", BatchNumber: "B1", TrainerID: 20,
	}
	err := CreateSlot(db, &dup)
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
}

func TestCreateSlotTrainerIndexRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	seedSlot(t, db, 1, "Mon", "09:00", "B1", 10)

	dup := models.ScheduleSlot{
		InstituteID: 1, Day: "Mon", Time: "09:00",
		Category: "Yoga", BatchNumber: "B2", TrainerID: 10,
	}
	err := CreateSlot(db, &dup)
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
}

func TestCreateSlotOtherInstituteDoesNotCollide(t *testing.T) {
	db := newTestDB(t)
	seedSlot(t, db, 1, "Mon", "09:00", "B1", 10)

	other := models.ScheduleSlot{
		InstituteID: 2, Day: "Mon", Time: "09:00",
		Category: "Dance", BatchNumber: "B1", TrainerID: 10,
	}
	assert.NoError(t, CreateSlot(db, &other))
}

// Two writers validate against the same stale snapshot; both pass the scan,
// only the first write wins. The index catches what the snapshot cannot.
func TestStaleSnapshotRaceCaughtByIndex(t *testing.T) {
	db := newTestDB(t)

	snapshot, err := LoadSlots(db, 1)
	require.NoError(t, err)
	require.Empty(t, snapshot)

	candA := Candidate{Day: "Mon", Time: "09:00", BatchNumber: "B1", TrainerID: 10}
	candB := Candidate{Day: "Mon", Time: "09:00", BatchNumber: "B1", TrainerID: 20}
	assert.Nil(t, FindConflict(snapshot, candA))
	assert.Nil(t, FindConflict(snapshot, candB))

	first := models.ScheduleSlot{InstituteID: 1, Day: candA.Day, Time: candA.Time, Category: "Dance", BatchNumber: candA.BatchNumber, TrainerID: candA.TrainerID, TrainerName: "T1"}
	require.NoError(t, CreateSlot(db, &first))

	second := models.ScheduleSlot{InstituteID: 1, Day: candB.Day, Time: candB.Time, Category: "Dance", BatchNumber: candB.BatchNumber, TrainerID: candB.TrainerID, TrainerName: "T2"}
	err = CreateSlot(db, &second)
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))

	// the refreshed store reports the conflict the stale snapshot missed
	refreshed, err := LoadSlots(db, 1)
	require.NoError(t, err)
	conflict := FindConflict(refreshed, candB)
	require.NotNil(t, conflict)
	assert.Equal(t, BatchConflict, conflict.Kind)
	assert.Equal(t, "T1", conflict.TrainerName)
}

func TestUpdateSlotReplacesWholesale(t *testing.T) {
	db := newTestDB(t)
	slot := seedSlot(t, db, 1, "Mon", "09:00", "B1", 10, 100, 101)

	updated := models.ScheduleSlot{
		ID:          slot.ID,
		InstituteID: 1,
		Day:         "Tue",
		Time:        "11:00",
		Category:    "Karate",
		BatchNumber: "B1",
		TrainerID:   20,
		TrainerName: "T2",
		Students:    []models.SlotStudent{{StudentID: 102}},
	}
	require.NoError(t, UpdateSlot(db, &updated))

	slots, err := LoadSlots(db, 1)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "Tue", slots[0].Day)
	assert.Equal(t, "11:00", slots[0].Time)
	assert.Equal(t, "Karate", slots[0].Category)
	assert.Equal(t, uint(20), slots[0].TrainerID)
	require.Len(t, slots[0].Students, 1)
	assert.Equal(t, uint(102), slots[0].Students[0].StudentID)
}

func TestUpdateSlotUnchangedValuesSucceed(t *testing.T) {
	db := newTestDB(t)
	slot := seedSlot(t, db, 1, "Mon", "09:00", "B1", 10, 100)

	// identical resubmission of the slot under edit
	same := slot
	same.Students = []models.SlotStudent{{StudentID: 100}}
	assert.NoError(t, UpdateSlot(db, &same))
}

func TestUpdateSlotNotFound(t *testing.T) {
	db := newTestDB(t)
	slot := seedSlot(t, db, 1, "Mon", "09:00", "B1", 10)

	// wrong institute
	foreign := models.ScheduleSlot{ID: slot.ID, InstituteID: 2, Day: "Mon", Time: "09:00", Category: "Dance", BatchNumber: "B1", TrainerID: 10}
	assert.ErrorIs(t, UpdateSlot(db, &foreign), gorm.ErrRecordNotFound)

	// unknown id
	missing := models.ScheduleSlot{ID: 999, InstituteID: 1, Day: "Mon", Time: "09:00", Category: "Dance", BatchNumber: "B1", TrainerID: 10}
	assert.ErrorIs(t, UpdateSlot(db, &missing), gorm.ErrRecordNotFound)
}

func TestUpdateSlotIntoOccupiedCellRejected(t *testing.T) {
	db := newTestDB(t)
	seedSlot(t, db, 1, "Mon", "09:00", "B1", 10)
	movable := seedSlot(t, db, 1, "Tue", "09:00", "B1", 10)

	movable.Day = "Mon"
	err := UpdateSlot(db, &movable)
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
}

func TestDeleteSlotFreesCell(t *testing.T) {
	db := newTestDB(t)
	slot := seedSlot(t, db, 1, "Mon", "09:00", "B1", 10, 100)

	require.NoError(t, DeleteSlot(db, 1, slot.ID))

	var linked int64
	db.Model(&models.SlotStudent{}).Where("slot_id = ?", slot.ID).Count(&linked)
	assert.Zero(t, linked)

	// the cell is immediately reusable
	again := models.ScheduleSlot{InstituteID: 1, Day: "Mon", Time: "09:00", Category: "Dance", BatchNumber: "B1", TrainerID: 10}
	assert.NoError(t, CreateSlot(db, &again))
}

func TestDeleteSlotNotFound(t *testing.T) {
	db := newTestDB(t)
	slot := seedSlot(t, db, 1, "Mon", "09:00", "B1", 10)

	assert.ErrorIs(t, DeleteSlot(db, 2, slot.ID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, DeleteSlot(db, 1, 999), gorm.ErrRecordNotFound)
}
