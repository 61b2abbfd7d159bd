package model

import "time"

// Instrument 全局乐器目录，各乐队共用；添加成员时可顺带新建
type Instrument struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:64;not null"`
	CreatedBy uint64 `gorm:"not null"`
	CreatedAt time.Time
}
