package utils

import (
	"log"
	"time"

	"institute/config"
	"institute/database"
	"institute/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[FEE-REMINDER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processFeeReminders finds active students without a recorded payment for
// the current month and notifies them by email and SMS.
func processFeeReminders() {
	db := database.Database.Db
	month := time.Now().Format("2006-01")

	var institutes []models.Institute
	if err := db.Where("is_deleted = ?", false).Find(&institutes).Error; err != nil {
		logScheduler("Error fetching institutes: " + err.Error())
		return
	}

	for _, institute := range institutes {
		paid := db.Model(&models.FeePayment{}).
			Select("student_id").
			Where("institute_id = ? AND month = ? AND is_deleted = ?", institute.ID, month, false)

		var students []models.Student
		if err := db.
			Where("institute_id = ? AND is_deleted = ?", institute.ID, false).
			Where("id NOT IN (?)", paid).
			Find(&students).Error; err != nil {
			logScheduler("Error fetching pending students for " + institute.Name + ": " + err.Error())
			continue
		}

		for _, student := range students {
			if student.Email != "" {
				if err := SendFeeReminderEmail(student.Email, student.FirstName, institute.Name, month, student.MonthlyFee); err != nil {
					logScheduler("Email reminder failed for " + student.Email + ": " + err.Error())
				}
			}
			if student.Mobile != "" {
				if err := SendFeeReminderSMS(student.Mobile, institute.Name, month, student.MonthlyFee); err != nil {
					logScheduler("SMS reminder failed for " + student.Mobile + ": " + err.Error())
				}
			}
		}

		if len(students) > 0 {
			logScheduler("Sent " + institute.Name + " reminders")
		}
	}
}

// StartFeeReminderScheduler runs the fee reminder job on the configured
// cron expression (daily at 09:00 by default).
func StartFeeReminderScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.ReminderCron, processFeeReminders); err != nil {
		log.Fatalf("Failed to schedule fee reminder job: %v", err)
	}

	c.Start()
	logScheduler("Fee reminder scheduler started")
	return c
}
