package service

import (
	"context"
	"fmt"
	"time"

	"Band_Plan/internal/coverage"
	"Band_Plan/internal/pkg"
	"Band_Plan/internal/repository/mysql"
)

// CalendarService 把解算结果和事件表变成可订阅的 ICS 和纯文本清单
type CalendarService struct {
	groups   *mysql.GroupRepository
	events   *mysql.EventRepository
	coverage *CoverageService
}

func NewCalendarService(coverageSvc *CoverageService) *CalendarService {
	return &CalendarService{
		groups:   mysql.NewGroupRepository(),
		events:   mysql.NewEventRepository(),
		coverage: coverageSvc,
	}
}

// ICS 乐队事件的日历订阅文件
func (s *CalendarService) ICS(groupID uint64) (string, error) {
	group, err := s.groups.FindByID(groupID)
	if err != nil {
		return "", err
	}
	events, err := s.events.ListByGroup(groupID)
	if err != nil {
		return "", err
	}

	calEvents := make([]pkg.CalendarEvent, 0, len(events))
	for _, e := range events {
		calEvents = append(calEvents, pkg.CalendarEvent{
			UID:      fmt.Sprintf("%d@bandplan", e.ID),
			Name:     e.Name,
			Date:     e.Date,
			Time:     e.Time,
			Location: e.Location,
			Notes:    e.Notes,
		})
	}
	return pkg.BuildICS(group.Name, calEvents), nil
}

// AvailableDatesText 可用日期清单。已经排了事件的日期不再列出。
func (s *CalendarService) AvailableDatesText(ctx context.Context, groupID uint64) (string, error) {
	res, err := s.coverage.Resolve(ctx, groupID)
	if err != nil {
		return "", err
	}
	events, err := s.events.ListByGroup(groupID)
	if err != nil {
		return "", err
	}
	booked := make(map[string]bool, len(events))
	for _, e := range events {
		booked[e.Date.Format(coverage.DateLayout)] = true
	}

	var days []pkg.AvailableDay
	for _, dateStr := range res.Available {
		if booked[dateStr] {
			continue
		}
		date, err := time.Parse(coverage.DateLayout, dateStr)
		if err != nil {
			return "", err
		}
		verdict := res.Verdicts[dateStr]
		days = append(days, pkg.AvailableDay{
			Date:             date,
			WithSubstitution: len(verdict.Substitutions) > 0,
		})
	}
	return pkg.BuildAvailableDatesText(days), nil
}
