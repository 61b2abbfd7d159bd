package pkg

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// CalendarEvent 日历导出用的精简事件视图，由 service 层从事件表映射
type CalendarEvent struct {
	UID      string
	Name     string
	Date     time.Time
	Time     string // "20:00"，为空按全天处理
	Location string
	Notes    string
}

// AvailableDay 可用日期及其成色：是否需要替补顶班
type AvailableDay struct {
	Date             time.Time
	WithSubstitution bool
}

// BuildICS 生成订阅用的 ICS 文本。行用 CRLF 结尾，逗号分号转义。
func BuildICS(calendarName string, events []CalendarEvent) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:-//Band_Plan//Scheduler//ES")
	line("CALSCALE:GREGORIAN")
	line("X-WR-CALNAME:" + escapeICS(calendarName))

	sorted := make([]CalendarEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	for _, e := range sorted {
		line("BEGIN:VEVENT")
		line("UID:" + escapeICS(e.UID))
		if start, ok := combineDateTime(e.Date, e.Time); ok {
			line("DTSTART:" + start.Format("20060102T150405"))
			line("DTEND:" + start.Add(2*time.Hour).Format("20060102T150405"))
		} else {
			line("DTSTART;VALUE=DATE:" + e.Date.Format("20060102"))
		}
		line("SUMMARY:" + escapeICS(e.Name))
		if e.Location != "" {
			line("LOCATION:" + escapeICS(e.Location))
		}
		if e.Notes != "" {
			line("DESCRIPTION:" + escapeICS(e.Notes))
		}
		line("END:VEVENT")
	}

	line("END:VCALENDAR")
	return b.String()
}

// BuildAvailableDatesText 按月份分组列出可用日期，
// 主力齐的和要靠替补的分开两段，给没有日历客户端的人看。
func BuildAvailableDatesText(days []AvailableDay) string {
	if len(days) == 0 {
		return "FECHAS DISPONIBLES\n\nNo hay fechas disponibles.\n"
	}

	sorted := make([]AvailableDay, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	type bucket struct {
		withPrincipals  []time.Time
		withSubstitutes []time.Time
	}
	var monthOrder []string
	byMonth := make(map[string]*bucket)
	for _, d := range sorted {
		key := d.Date.Format("January 2006")
		mb := byMonth[key]
		if mb == nil {
			mb = &bucket{}
			byMonth[key] = mb
			monthOrder = append(monthOrder, key)
		}
		if d.WithSubstitution {
			mb.withSubstitutes = append(mb.withSubstitutes, d.Date)
		} else {
			mb.withPrincipals = append(mb.withPrincipals, d.Date)
		}
	}

	var b strings.Builder
	b.WriteString("FECHAS DISPONIBLES\n\n")
	for _, key := range monthOrder {
		mb := byMonth[key]
		b.WriteString(strings.ToUpper(key))
		b.WriteString("\n")
		if len(mb.withPrincipals) > 0 {
			b.WriteString("Con miembros principales: ")
			b.WriteString(joinDays(mb.withPrincipals))
			b.WriteString("\n")
		}
		if len(mb.withSubstitutes) > 0 {
			b.WriteString("Con sustitutos: ")
			b.WriteString(joinDays(mb.withSubstitutes))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func joinDays(dates []time.Time) string {
	parts := make([]string, 0, len(dates))
	for _, d := range dates {
		parts = append(parts, fmt.Sprintf("%d(%s)", d.Day(), d.Format("Mon")))
	}
	return strings.Join(parts, ", ")
}

func combineDateTime(date time.Time, clock string) (time.Time, bool) {
	if clock == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), true
}

func escapeICS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
