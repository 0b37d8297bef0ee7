package models

import (
	"gorm.io/gorm"
)

type Institute struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Email       string `json:"email" gorm:"unique;not null"`
	Password    string `json:"-" gorm:"not null"`
	Mobile      string `json:"mobile" gorm:"default:''"`
	Category    string `json:"category" gorm:"default:''"` // Dance, PlaySchool, RacketSports, ...
	Description string `json:"description" gorm:"default:''"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PinCode     string `json:"pin_code"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
