package mysql

import (
	"Band_Plan/internal/model"

	"gorm.io/gorm"
)

type MemberRepository struct {
	DB *gorm.DB
}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{DB: DB}
}

// ListByGroup 带乐器预加载的花名册
func (r *MemberRepository) ListByGroup(groupID uint64) ([]model.GroupMember, error) {
	var list []model.GroupMember
	err := r.DB.Preload("Instruments").
		Where("group_id = ?", groupID).
		Order("id").
		Find(&list).Error
	return list, err
}

func (r *MemberRepository) FindByID(id uint64) (*model.GroupMember, error) {
	var m model.GroupMember
	err := r.DB.Preload("Instruments").First(&m, id).Error
	return &m, err
}

// CreateWithInstruments 新建成员并挂上乐器；目录里没有的乐器顺带创建
func (r *MemberRepository) CreateWithInstruments(m *model.GroupMember, instrumentNames []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		instruments, err := ensureInstruments(tx, instrumentNames, m.CreatedBy)
		if err != nil {
			return err
		}
		m.Instruments = instruments
		return tx.Create(m).Error
	})
}

// UpdateRoleAndInstruments 角色和乐器集合整体替换
func (r *MemberRepository) UpdateRoleAndInstruments(m *model.GroupMember, role string, instrumentNames []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(m).Update("role", role).Error; err != nil {
			return err
		}
		instruments, err := ensureInstruments(tx, instrumentNames, m.CreatedBy)
		if err != nil {
			return err
		}
		return tx.Model(m).Association("Instruments").Replace(instruments)
	})
}

// LinkUser 把占位成员和账号关联起来（接受邀请时回填）
func (r *MemberRepository) LinkUser(memberID, userID uint64) error {
	return r.DB.Model(&model.GroupMember{}).
		Where("id = ? AND user_id IS NULL", memberID).
		Update("user_id", userID).Error
}

// Delete 删除成员及其乐器关联和阵容记录
func (r *MemberRepository) Delete(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM group_member_instruments WHERE group_member_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&model.EventAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.GroupMember{}, id).Error
	})
}

// GroupIDsForUser 该用户所在的全部乐队，用于失效覆盖缓存
func (r *MemberRepository) GroupIDsForUser(userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.DB.Model(&model.GroupMember{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("group_id", &ids).Error
	return ids, err
}

// FindSharedMembership 返回 actor 在某个同时包含 target 的乐队里的成员记录，
// 没有共同乐队时返回 gorm.ErrRecordNotFound
func (r *MemberRepository) FindSharedMembership(actorUserID, targetUserID uint64) (*model.GroupMember, error) {
	var m model.GroupMember
	err := r.DB.
		Where("user_id = ? AND group_id IN (?)",
			actorUserID,
			r.DB.Model(&model.GroupMember{}).Select("group_id").Where("user_id = ?", targetUserID),
		).
		Order("role = 'principal' DESC").
		First(&m).Error
	return &m, err
}

func ensureInstruments(tx *gorm.DB, names []string, createdBy uint64) ([]model.Instrument, error) {
	instruments := make([]model.Instrument, 0, len(names))
	for _, name := range names {
		var ins model.Instrument
		err := tx.Where("name = ?", name).
			Attrs(model.Instrument{Name: name, CreatedBy: createdBy}).
			FirstOrCreate(&ins).Error
		if err != nil {
			return nil, err
		}
		instruments = append(instruments, ins)
	}
	return instruments, nil
}
