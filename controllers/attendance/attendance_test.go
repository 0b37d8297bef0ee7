package attendanceController_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"institute/config"
	"institute/database"
	"institute/middleware"
	"institute/models"
	attendanceRoutes "institute/routers/attendanceRoutes"

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
	app      *fiber.App
	db       *gorm.DB
	token    string
	studentA models.Student
	studentB models.Student
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

	studentA := models.Student{InstituteID: institute.ID, FirstName: "S1", BatchNumber: "B1"}
	studentB := models.Student{InstituteID: institute.ID, FirstName: "S2", BatchNumber: "B1"}
	require.NoError(t, db.Create(&studentA).Error)
	require.NoError(t, db.Create(&studentB).Error)

	token, err := middleware.GenerateJWT(institute.ID, institute.ID, institute.Name, middleware.RoleInstitute, institute.Email)
	require.NoError(t, err)

	app := fiber.New()
	attendanceRoutes.SetupAttendanceRoutes(app)

	return &fixture{app: app, db: db, token: token, studentA: studentA, studentB: studentB}
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

func markPayload(date string, entries ...map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"date":    date,
		"entries": entries,
	}
}

func entry(id uint, status string) map[string]interface{} {
	return map[string]interface{}{"id": id, "status": status}
}

func TestMarkStudentAttendance(t *testing.T) {
	f := setup(t)

	code, _ := f.request(t, "POST", "/attendance/students", markPayload("2026-01-05",
		entry(f.studentA.ID, models.AttendancePresent),
		entry(f.studentB.ID, models.AttendanceAbsent),
	))
	require.Equal(t, fiber.StatusOK, code)

	var count int64
	f.db.Model(&models.StudentAttendance{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestRemarkingOverwritesStatus(t *testing.T) {
	f := setup(t)

	code, _ := f.request(t, "POST", "/attendance/students", markPayload("2026-01-05",
		entry(f.studentA.ID, models.AttendancePresent),
	))
	require.Equal(t, fiber.StatusOK, code)

	code, _ = f.request(t, "POST", "/attendance/students", markPayload("2026-01-05",
		entry(f.studentA.ID, models.AttendanceAbsent),
	))
	require.Equal(t, fiber.StatusOK, code)

	// still one row per (student, date), with the latest status
	var records []models.StudentAttendance
	require.NoError(t, f.db.Where("student_id = ?", f.studentA.ID).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendanceAbsent, records[0].Status)
}

func TestMarkAttendanceUnknownStudent(t *testing.T) {
	f := setup(t)

	code, _ := f.request(t, "POST", "/attendance/students", markPayload("2026-01-05",
		entry(999, models.AttendancePresent),
	))
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestMarkAttendanceRejectsBadStatus(t *testing.T) {
	f := setup(t)

	code, _ := f.request(t, "POST", "/attendance/students", markPayload("2026-01-05",
		entry(f.studentA.ID, "LATE"),
	))
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestListStudentAttendanceByDate(t *testing.T) {
	f := setup(t)

	code, _ := f.request(t, "POST", "/attendance/students", markPayload("2026-01-05",
		entry(f.studentA.ID, models.AttendancePresent),
	))
	require.Equal(t, fiber.StatusOK, code)
	code, _ = f.request(t, "POST", "/attendance/students", markPayload("2026-01-06",
		entry(f.studentA.ID, models.AttendanceAbsent),
	))
	require.Equal(t, fiber.StatusOK, code)

	code, env := f.request(t, "GET", "/attendance/students?date=2026-01-05", nil)
	require.Equal(t, fiber.StatusOK, code)

	var data struct {
		Attendance []models.StudentAttendance `json:"attendance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Attendance, 1)
	assert.Equal(t, models.AttendancePresent, data.Attendance[0].Status)
}
