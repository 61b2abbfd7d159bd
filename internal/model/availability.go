package model

import "time"

// AvailabilityMark 用户声明某天有空。挂在 user 而不是 member 上：
// 一个人可能同时在多个乐队，空闲是人的属性。
// (user_id, date) 唯一，存在即有空，删除即撤回。
type AvailabilityMark struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;uniqueIndex:uk_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uk_user_date"`
	CreatedAt time.Time
}
