package model

import "time"

// Event 排期流程里一个乐队同一天最多一个事件，用 (group_id, date) 唯一约束兜底
type Event struct {
	ID        uint64    `gorm:"primaryKey"`
	GroupID   uint64    `gorm:"not null;uniqueIndex:uk_group_date"`
	Name      string    `gorm:"size:128;not null"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uk_group_date"`
	Time      string    `gorm:"size:8;not null"` // "20:00"
	Notes     string    `gorm:"type:text"`
	Location  string    `gorm:"size:255"`
	CreatedBy uint64    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EventAssignment 事件阵容记录。编辑时整体替换（先删后插，同一事务）。
type EventAssignment struct {
	ID        uint64  `gorm:"primaryKey"`
	EventID   uint64  `gorm:"not null;index;uniqueIndex:uk_event_member"`
	MemberID  uint64  `gorm:"not null;uniqueIndex:uk_event_member"`
	UserID    *uint64 `gorm:"index"`
	CreatedBy uint64  `gorm:"not null"`
	CreatedAt time.Time
}
