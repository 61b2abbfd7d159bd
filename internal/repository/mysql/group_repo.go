package mysql

import (
	"Band_Plan/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{DB: DB}
}

// Create 建队并把创建者放进花名册（主力）
func (r *GroupRepository) Create(g *model.Group, creatorName string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(g).Error; err != nil {
			return err
		}
		creator := &model.GroupMember{
			GroupID:   g.ID,
			UserID:    &g.CreatorID,
			Name:      creatorName,
			Role:      model.RolePrincipal,
			CreatedBy: g.CreatorID,
		}
		return tx.Create(creator).Error
	})
}

func (r *GroupRepository) FindByID(id uint64) (*model.Group, error) {
	var g model.Group
	err := r.DB.First(&g, id).Error
	return &g, err
}

// ListForUser 列出该用户在花名册里出现过的所有乐队
func (r *GroupRepository) ListForUser(userID uint64) ([]model.Group, error) {
	var list []model.Group
	// groups 是 MySQL 8 保留字，拼 SQL 时要加反引号
	err := r.DB.
		Joins("JOIN group_members gm ON gm.group_id = `groups`.id").
		Where("gm.user_id = ?", userID).
		Order("`groups`.id").
		Find(&list).Error
	return list, err
}

// Delete 整队级联删除：阵容记录 -> 事件 -> 成员乐器关联 -> 成员 -> 乐队。
// 空闲标记属于用户本人，不随乐队删除。
func (r *GroupRepository) Delete(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE ea FROM event_assignments ea JOIN events e ON e.id = ea.event_id WHERE e.group_id = ?", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&model.Event{}).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE gmi FROM group_member_instruments gmi JOIN group_members gm ON gm.id = gmi.group_member_id WHERE gm.group_id = ?", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&model.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Group{}, id).Error
	})
}
