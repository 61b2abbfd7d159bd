package service

import (
	"context"
	"time"

	"Band_Plan/internal/coverage"
	"Band_Plan/internal/repository/mysql"
	"Band_Plan/internal/repository/redis"
)

// CoverageService 组装快照喂给 coverage 引擎，并维护按乐队的结果缓存。
// 任何一步读库失败都直接把错误抛出去（fail closed）：
// 宁可不给结果，也不能把"查不到"当成"有空"提给用户。
type CoverageService struct {
	members      *mysql.MemberRepository
	availability *mysql.AvailabilityRepository
	events       *mysql.EventRepository
	cache        *redis.CoverageCacheRepository
}

func NewCoverageService() *CoverageService {
	return &CoverageService{
		members:      mysql.NewMemberRepository(),
		availability: mysql.NewAvailabilityRepository(),
		events:       mysql.NewEventRepository(),
		cache:        &redis.CoverageCacheRepository{},
	}
}

// Resolve 整队可用性，带缓存。缓存读写失败都退化为直接重算。
func (s *CoverageService) Resolve(ctx context.Context, groupID uint64) (*coverage.Result, error) {
	if cached, ok, err := s.cache.Get(ctx, groupID); err == nil && ok {
		return cached, nil
	}

	snap, err := s.Snapshot(groupID)
	if err != nil {
		return nil, err
	}
	res := coverage.Resolve(*snap)
	s.cache.Set(ctx, groupID, &res)
	return &res, nil
}

// EligibilityForDate 事件编辑器用：指定日期每个成员能否到场
func (s *CoverageService) EligibilityForDate(groupID uint64, date time.Time) ([]coverage.Eligibility, error) {
	snap, err := s.Snapshot(groupID)
	if err != nil {
		return nil, err
	}
	return coverage.EligibleMembers(*snap, date.Format(coverage.DateLayout)), nil
}

// Snapshot 从存储层取出一份一致的解算输入
func (s *CoverageService) Snapshot(groupID uint64) (*coverage.Snapshot, error) {
	members, err := s.members.ListByGroup(groupID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(members))
	for _, m := range members {
		if m.UserID != nil {
			userIDs = append(userIDs, *m.UserID)
		}
	}

	marks, err := s.availability.ListForUsers(userIDs)
	if err != nil {
		return nil, err
	}
	availability := make(map[uint64]map[string]bool)
	for _, mark := range marks {
		dates := availability[mark.UserID]
		if dates == nil {
			dates = make(map[string]bool)
			availability[mark.UserID] = dates
		}
		dates[mark.Date.Format(coverage.DateLayout)] = true
	}

	internal, err := s.events.AssignmentsInGroup(groupID)
	if err != nil {
		return nil, err
	}
	external, err := s.events.AssignmentsOutsideGroup(groupID, userIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]coverage.AssignmentRow, 0, len(internal)+len(external))
	for _, a := range append(internal, external...) {
		if a.UserID == nil {
			continue
		}
		rows = append(rows, coverage.AssignmentRow{
			UserID:  *a.UserID,
			GroupID: a.GroupID,
			Date:    a.Date.Format(coverage.DateLayout),
		})
	}

	return &coverage.Snapshot{
		GroupID:      groupID,
		Members:      members,
		Availability: availability,
		Commitments:  coverage.NewCommitmentIndex(rows),
	}, nil
}

// Invalidate 数据变更后把相关乐队的缓存删掉
func (s *CoverageService) Invalidate(ctx context.Context, groupIDs ...uint64) {
	s.cache.Invalidate(ctx, groupIDs...)
}
