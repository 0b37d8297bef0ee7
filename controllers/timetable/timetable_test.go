package timetableController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"institute/config"
	"institute/database"
	"institute/middleware"
	"institute/models"
	timetableRoutes "institute/routers/timetableRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fixture struct {
	app       *fiber.App
	db        *gorm.DB
	token     string
	trainerA  models.Trainer
	trainerB  models.Trainer
	studentB1 models.Student
	studentB2 models.Student
}

func setup(t *testing.T) *fixture {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	institute := models.Institute{Name: "Spin Academy", Email: "spin@example.com", Password: "x"}
	require.NoError(t, db.Create(&institute).Error)

	trainerA := models.Trainer{InstituteID: institute.ID, FirstName: "T1"}
	trainerB := models.Trainer{InstituteID: institute.ID, FirstName: "T2"}
	require.NoError(t, db.Create(&trainerA).Error)
	require.NoError(t, db.Create(&trainerB).Error)

	studentB1 := models.Student{InstituteID: institute.ID, FirstName: "S1", BatchNumber: "B1"}
	studentB2 := models.Student{InstituteID: institute.ID, FirstName: "S2", BatchNumber: "B2"}
	require.NoError(t, db.Create(&studentB1).Error)
	require.NoError(t, db.Create(&studentB2).Error)

	token, err := middleware.GenerateJWT(institute.ID, institute.ID, institute.Name, middleware.RoleInstitute, institute.Email)
	require.NoError(t, err)

	app := fiber.New()
	timetableRoutes.SetupTimetableRoutes(app)

	return &fixture{
		app:       app,
		db:        db,
		token:     token,
		trainerA:  trainerA,
		trainerB:  trainerB,
		studentB1: studentB1,
		studentB2: studentB2,
	}
}

func (f *fixture) request(t *testing.T, method, path string, payload interface{}) (int, envelope) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token)

	resp, err := f.app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func slotPayload(batch string, trainerID uint, studentIDs ...uint) map[string]interface{} {
	return map[string]interface{}{
		"day":          "Mon",
		"time":         "09:00",
		"category":     "Dance",
		"batch_number": batch,
		"trainer_id":   trainerID,
		"students":     studentIDs,
	}
}

func TestCreateSlot(t *testing.T) {
	f := setup(t)

	code, env := f.request(t, "POST", "/timetable/", slotPayload("B1", f.trainerA.ID, f.studentB1.ID))
	assert.Equal(t, fiber.StatusCreated, code)
	assert.True(t, env.Status)

	var count int64
	f.db.Model(&models.ScheduleSlot{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateSlotBatchConflict(t *testing.T) {
	f := setup(t)

	code, _ := f.request(t, "POST", "/timetable/", slotPayload("B1", f.trainerA.ID, f.studentB1.ID))
	require.Equal(t, fiber.StatusCreated, code)

	// same cell, same batch, different trainer
	code, env := f.request(t, "POST", "/timetable/", slotPayload("B1", f.trainerB.ID, f.studentB1.ID))
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, "Batch B1 already has a class on Mon at 09:00", env.Message)
}

func TestCreateSlotTrainerConflict(t *testing.T) {
	f := setup(t)

	code, _ := f.request(t, "POST", "/timetable/", slotPayload("B1", f.trainerA.ID, f.studentB1.ID))
	require.Equal(t, fiber.StatusCreated, code)

	// same cell, different batch, same trainer
	code, env := f.request(t, "POST", "/timetable/", slotPayload("B2", f.trainerA.ID, f.studentB2.ID))
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, "Trainer is already assigned to another batch on Mon at 09:00", env.Message)
}

func TestCreateSlotRejectsStudentsOutsideBatch(t *testing.T) {
	f := setup(t)

	// studentB2 belongs to batch B2, not B1
	code, _ := f.request(t, "POST", "/timetable/", slotPayload("B1", f.trainerA.ID, f.studentB2.ID))
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestUpdateSlotUnchangedValuesSucceed(t *testing.T) {
	f := setup(t)

	code, _ := f.request(t, "POST", "/timetable/", slotPayload("B1", f.trainerA.ID, f.studentB1.ID))
	require.Equal(t, fiber.StatusCreated, code)

	var slot models.ScheduleSlot
	require.NoError(t, f.db.First(&slot).Error)

	// resubmitting the identical slot must not conflict with itself
	code, env := f.request(t, "PUT", fmt.Sprintf("/timetable/%d", slot.ID), slotPayload("B1", f.trainerA.ID, f.studentB1.ID))
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, env.Status)
}

func TestDeleteSlot(t *testing.T) {
	f := setup(t)

	code, _ := f.request(t, "POST", "/timetable/", slotPayload("B1", f.trainerA.ID, f.studentB1.ID))
	require.Equal(t, fiber.StatusCreated, code)

	var slot models.ScheduleSlot
	require.NoError(t, f.db.First(&slot).Error)

	code, _ = f.request(t, "DELETE", fmt.Sprintf("/timetable/%d", slot.ID), nil)
	assert.Equal(t, fiber.StatusOK, code)

	// the cell is reusable right away
	code, _ = f.request(t, "POST", "/timetable/", slotPayload("B1", f.trainerA.ID, f.studentB1.ID))
	assert.Equal(t, fiber.StatusCreated, code)
}

func TestGetTimetableGrid(t *testing.T) {
	f := setup(t)

	code, _ := f.request(t, "POST", "/timetable/", slotPayload("B1", f.trainerA.ID, f.studentB1.ID))
	require.Equal(t, fiber.StatusCreated, code)

	code, env := f.request(t, "GET", "/timetable/", nil)
	require.Equal(t, fiber.StatusOK, code)

	var data struct {
		Days  []string              `json:"days"`
		Times []string              `json:"times"`
		Slots []models.ScheduleSlot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Days, 7)
	assert.Len(t, data.Times, 9)
	assert.Len(t, data.Slots, 1)
}
