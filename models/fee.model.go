package models

import (
	"time"

	"gorm.io/gorm"
)

type FeePayment struct {
	gorm.Model
	InstituteID uint      `json:"institute_id" gorm:"index;not null"`
	StudentID   uint      `json:"student_id" gorm:"index;not null"`
	Amount      uint      `json:"amount" gorm:"not null"`
	Month       string    `json:"month" gorm:"type:varchar(7);not null"` // "2026-01"
	Method      string    `json:"method" gorm:"default:'CASH'"`
	ReceiptNo   string    `json:"receipt_no" gorm:"unique;not null"`
	PaidAt      time.Time `json:"paid_at"`
	IsDeleted   bool      `json:"-" gorm:"default:false"`
	Student     Student   `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}
