package model

import "time"

const (
	RolePrincipal  = "principal"
	RoleSubstitute = "substitute"
)

// GroupMember 乐队排班表里的一个位置。UserID 为空表示该位置还没有关联账号
// （通过邀请确认后回填）。
type GroupMember struct {
	ID          uint64  `gorm:"primaryKey"`
	GroupID     uint64  `gorm:"not null;index"`
	UserID      *uint64 `gorm:"index"`
	Name        string  `gorm:"size:64;not null"`
	Role        string  `gorm:"size:16;not null;default:principal"`
	CreatedBy   uint64  `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Instruments []Instrument `gorm:"many2many:group_member_instruments"`
}

// HasInstrument 按乐器ID判断该成员是否能演奏
func (m *GroupMember) HasInstrument(instrumentID uint64) bool {
	for _, ins := range m.Instruments {
		if ins.ID == instrumentID {
			return true
		}
	}
	return false
}
