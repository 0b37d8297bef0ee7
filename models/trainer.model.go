package models

import (
	"gorm.io/gorm"
)

type Trainer struct {
	gorm.Model
	InstituteID    uint      `json:"institute_id" gorm:"index;not null"`
	FirstName      string    `json:"first_name" gorm:"not null"`
	LastName       string    `json:"last_name" gorm:"default:''"`
	Email          string    `json:"email" gorm:"default:''"`
	Mobile         string    `json:"mobile" gorm:"default:''"`
	Specialization string    `json:"specialization" gorm:"default:''"`
	MonthlySalary  uint      `json:"monthly_salary" gorm:"default:0"`
	Password       string    `json:"-" gorm:"default:''"` // set when the trainer gets a login
	IsDeleted      bool      `json:"-" gorm:"default:false"`
	Institute      Institute `json:"-" gorm:"foreignKey:InstituteID;constraint:OnDelete:CASCADE"`
}
