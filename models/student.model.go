package models

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	gorm.Model
	InstituteID uint      `json:"institute_id" gorm:"index;not null"`
	FirstName   string    `json:"first_name" gorm:"not null"`
	LastName    string    `json:"last_name" gorm:"default:''"`
	Email       string    `json:"email" gorm:"default:''"`
	Mobile      string    `json:"mobile" gorm:"default:''"`
	BatchNumber string    `json:"batch_number" gorm:"index;not null"`
	Category    string    `json:"category" gorm:"default:''"`
	MonthlyFee  uint      `json:"monthly_fee" gorm:"default:0"`
	JoinedAt    time.Time `json:"joined_at"`
	IsDeleted   bool      `json:"-" gorm:"default:false"`
	Institute   Institute `json:"-" gorm:"foreignKey:InstituteID;constraint:OnDelete:CASCADE"`
}
