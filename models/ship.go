package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ship is the materialized read model built by the projection worker.
// Hull holds the current plank sequence as JSON.
type Ship struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ShipID       uuid.UUID      `gorm:"uniqueIndex" json:"ship_id"`
	Name         string         `json:"name"`
	Version      int            `json:"version"`
	Hull         []byte         `json:"hull"`
	HullSize     int            `json:"hull_size"`
	LaunchedAt   time.Time      `json:"launched_at"`
	RepairCount  int            `json:"repair_count"`
	LastRepairAt *time.Time     `json:"last_repair_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}
