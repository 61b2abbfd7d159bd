package model

import "time"

type Group struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:64;not null"`
	CreatorID uint64 `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
