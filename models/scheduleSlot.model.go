package models

import (
	"time"
)

// ScheduleSlot is one scheduled class at a fixed (day, time) for one batch
// with one trainer. Slots are hard-deleted (no DeletedAt) so the compound
// unique indexes below stay authoritative: within an institute no two slots
// may share (day, time, batch_number) and no two may share (day, time,
// trainer_id). These indexes are the server-side enforcement of the
// double-booking invariant; the in-memory conflict scan only exists to give
// the user a friendly message before the write is attempted.
type ScheduleSlot struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	InstituteID uint   `json:"institute_id" gorm:"not null;index;uniqueIndex:uq_slot_batch,priority:1;uniqueIndex:uq_slot_trainer,priority:1"`
	Day         string `json:"day" gorm:"type:varchar(3);not null;uniqueIndex:uq_slot_batch,priority:2;uniqueIndex:uq_slot_trainer,priority:2"`
	Time        string `json:"time" gorm:"type:varchar(5);not null;uniqueIndex:uq_slot_batch,priority:3;uniqueIndex:uq_slot_trainer,priority:3"`
	Category    string `json:"category" gorm:"not null"`
	BatchNumber string `json:"batch_number" gorm:"not null;uniqueIndex:uq_slot_batch,priority:4"`
	TrainerID   uint   `json:"trainer_id" gorm:"not null;uniqueIndex:uq_slot_trainer,priority:4"`
	TrainerName string `json:"trainer_name" gorm:"default:''"` // denormalized for conflict messages and grid chips

	Students []SlotStudent `json:"students" gorm:"foreignKey:SlotID;constraint:OnDelete:CASCADE"`
}

// SlotStudent links a student to a slot. Rows are rewritten wholesale on
// slot update; edits are full replacements, never patches.
type SlotStudent struct {
	ID        uint `json:"-" gorm:"primaryKey"`
	SlotID    uint `json:"-" gorm:"not null;uniqueIndex:uq_slot_student,priority:1"`
	StudentID uint `json:"student_id" gorm:"not null;uniqueIndex:uq_slot_student,priority:2"`
}
