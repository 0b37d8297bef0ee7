package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
)

type StudentAttendance struct {
	gorm.Model
	InstituteID uint      `json:"institute_id" gorm:"index;not null"`
	StudentID   uint      `json:"student_id" gorm:"not null;uniqueIndex:uq_student_attendance,priority:1"`
	Date        time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:uq_student_attendance,priority:2"`
	Status      string    `json:"status" gorm:"default:'PRESENT'"`
	MarkedByID  uint      `json:"marked_by_id" gorm:"default:0"` // trainer who marked it, 0 when the institute did
	Student     Student   `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

type TrainerAttendance struct {
	gorm.Model
	InstituteID uint      `json:"institute_id" gorm:"index;not null"`
	TrainerID   uint      `json:"trainer_id" gorm:"not null;uniqueIndex:uq_trainer_attendance,priority:1"`
	Date        time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:uq_trainer_attendance,priority:2"`
	Status      string    `json:"status" gorm:"default:'PRESENT'"`
	Trainer     Trainer   `json:"-" gorm:"foreignKey:TrainerID;constraint:OnDelete:CASCADE"`
}
