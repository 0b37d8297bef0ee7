package timetable

import (
	"errors"

	"institute/models"

	"gorm.io/gorm"
)

// LoadSlots fetches the full weekly schedule of one institute, students
// preloaded, in insertion order. No pagination; a weekly grid is bounded by
// 7 days × 9 times × slots per cell. Also serves as the refresh step after
// every write.
func LoadSlots(db *gorm.DB, instituteID uint) ([]models.ScheduleSlot, error) {
	var slots []models.ScheduleSlot
	if err := db.Where("institute_id = ?", instituteID).
		Preload("Students").
		Order("id").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// IsDuplicate reports whether a write failed on one of the compound unique
// indexes, i.e. a concurrent writer filled the cell after the snapshot
// scan passed.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// CreateSlot persists a new slot together with its student links.
func CreateSlot(db *gorm.DB, slot *models.ScheduleSlot) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(slot).Error
	})
}

// UpdateSlot replaces the slot identified by slot.ID wholesale: scalar
// fields overwritten, student links deleted and re-inserted. Returns
// gorm.ErrRecordNotFound if the slot does not belong to the institute.
func UpdateSlot(db *gorm.DB, slot *models.ScheduleSlot) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ScheduleSlot{}).
			Where("id = ? AND institute_id = ?", slot.ID, slot.InstituteID).
			Updates(map[string]interface{}{
				"day":          slot.Day,
				"time":         slot.Time,
				"category":     slot.Category,
				"batch_number": slot.BatchNumber,
				"trainer_id":   slot.TrainerID,
				"trainer_name": slot.TrainerName,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("slot_id = ?", slot.ID).Delete(&models.SlotStudent{}).Error; err != nil {
			return err
		}
		for i := range slot.Students {
			slot.Students[i].ID = 0
			slot.Students[i].SlotID = slot.ID
		}
		if len(slot.Students) > 0 {
			if err := tx.Create(&slot.Students).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteSlot removes a slot and its student links. Hard delete, so the
// unique indexes free the cell immediately.
func DeleteSlot(db *gorm.DB, instituteID, slotID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND institute_id = ?", slotID, instituteID).
			Delete(&models.ScheduleSlot{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("slot_id = ?", slotID).Delete(&models.SlotStudent{}).Error
	})
}
