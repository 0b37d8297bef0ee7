package timetable

import (
	"fmt"

	"institute/models"
)

// Days and Times are the fixed grid axes. Every slot lives on the cartesian
// product of the two; both sets are closed and org-wide.
var Days = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var Times = []string{
	"09:00",
	"10:00",
	"11:00",
	"12:00",
	"13:00",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
}

// ValidDay reports whether d is one of the seven weekday labels.
func ValidDay(d string) bool {
	for _, day := range Days {
		if day == d {
			return true
		}
	}
	return false
}

// ValidTime reports whether t is one of the fixed hourly labels.
func ValidTime(t string) bool {
	for _, tm := range Times {
		if tm == t {
			return true
		}
	}
	return false
}

// Candidate is a proposed slot placement. ExcludeID carries the id of the
// slot under edit so it never conflicts with itself; zero for a new slot.
type Candidate struct {
	Day         string
	Time        string
	BatchNumber string
	TrainerID   uint
	ExcludeID   uint
}

type ConflictKind string

const (
	BatchConflict   ConflictKind = "BATCH"
	TrainerConflict ConflictKind = "TRAINER"
)

// Conflict describes the existing occupant that blocks a candidate:
// TrainerName identifies the occupant on a batch conflict, BatchNumber on a
// trainer conflict.
type Conflict struct {
	Kind        ConflictKind `json:"kind"`
	SlotID      uint         `json:"slot_id"`
	Day         string       `json:"day"`
	Time        string       `json:"time"`
	BatchNumber string       `json:"batch_number"`
	TrainerName string       `json:"trainer_name"`
}

// Message renders the user-facing alert text.
func (c *Conflict) Message() string {
	if c.Kind == BatchConflict {
		return fmt.Sprintf("Batch %s already has a class on %s at %s", c.BatchNumber, c.Day, c.Time)
	}
	return fmt.Sprintf("Trainer is already assigned to another batch on %s at %s", c.Day, c.Time)
}

// FindConflict scans slots in store order for a double-booking. For a slot
// sharing the candidate's (day, time), a batch match wins over a trainer
// match. The uniqueness invariants guarantee at most one occupant per
// (day, time, batch) and per (day, time, trainer), so the first match is
// the only match. Pure; no side effects.
func FindConflict(slots []models.ScheduleSlot, cand Candidate) *Conflict {
	for i := range slots {
		s := &slots[i]
		if s.ID == cand.ExcludeID {
			continue
		}
		if s.Day != cand.Day || s.Time != cand.Time {
			continue
		}
		if s.BatchNumber == cand.BatchNumber {
			return &Conflict{
				Kind:        BatchConflict,
				SlotID:      s.ID,
				Day:         s.Day,
				Time:        s.Time,
				BatchNumber: s.BatchNumber,
				TrainerName: s.TrainerName,
			}
		}
		if s.TrainerID == cand.TrainerID {
			return &Conflict{
				Kind:        TrainerConflict,
				SlotID:      s.ID,
				Day:         s.Day,
				Time:        s.Time,
				BatchNumber: s.BatchNumber,
				TrainerName: s.TrainerName,
			}
		}
	}
	return nil
}

// GridFor maps slots onto the day×time grid for rendering. Every cell is
// present, empty cells hold an empty list.
func GridFor(slots []models.ScheduleSlot) map[string]map[string][]models.ScheduleSlot {
	grid := make(map[string]map[string][]models.ScheduleSlot, len(Days))
	for _, day := range Days {
		grid[day] = make(map[string][]models.ScheduleSlot, len(Times))
		for _, tm := range Times {
			grid[day][tm] = []models.ScheduleSlot{}
		}
	}
	for _, s := range slots {
		if cells, ok := grid[s.Day]; ok {
			if _, ok := cells[s.Time]; ok {
				cells[s.Time] = append(cells[s.Time], s)
			}
		}
	}
	return grid
}
