package models

import (
	"time"

	"gorm.io/gorm"
)

type SalaryPayment struct {
	gorm.Model
	InstituteID uint      `json:"institute_id" gorm:"index;not null"`
	TrainerID   uint      `json:"trainer_id" gorm:"index;not null"`
	Amount      uint      `json:"amount" gorm:"not null"`
	Month       string    `json:"month" gorm:"type:varchar(7);not null"`
	PaidAt      time.Time `json:"paid_at"`
	IsDeleted   bool      `json:"-" gorm:"default:false"`
	Trainer     Trainer   `json:"-" gorm:"foreignKey:TrainerID;constraint:OnDelete:CASCADE"`
}
