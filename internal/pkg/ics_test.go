package pkg

import (
	"strings"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildICS(t *testing.T) {
	events := []CalendarEvent{
		{UID: "2@bandplan", Name: "Concierto, plaza", Date: date(2026, 10, 3), Time: "21:30", Location: "Plaza Mayor"},
		{UID: "1@bandplan", Name: "Ensayo", Date: date(2026, 9, 12), Time: "20:00", Notes: "traer partituras"},
	}
	got := BuildICS("Mi Banda", events)

	if !strings.HasPrefix(got, "BEGIN:VCALENDAR\r\n") || !strings.HasSuffix(got, "END:VCALENDAR\r\n") {
		t.Fatalf("missing calendar envelope:\n%s", got)
	}
	if strings.Count(got, "BEGIN:VEVENT") != 2 {
		t.Fatalf("expected 2 events:\n%s", got)
	}
	// 事件按日期排序
	if strings.Index(got, "SUMMARY:Ensayo") > strings.Index(got, "SUMMARY:Concierto") {
		t.Error("events not sorted by date")
	}
	if !strings.Contains(got, "DTSTART:20260912T200000\r\n") {
		t.Errorf("wrong DTSTART:\n%s", got)
	}
	if !strings.Contains(got, "DTEND:20260912T220000\r\n") {
		t.Errorf("wrong DTEND:\n%s", got)
	}
	// 逗号要转义
	if !strings.Contains(got, `SUMMARY:Concierto\, plaza`) {
		t.Errorf("comma not escaped:\n%s", got)
	}
	if !strings.Contains(got, "DESCRIPTION:traer partituras\r\n") {
		t.Errorf("missing description:\n%s", got)
	}
}

func TestBuildICSAllDayFallback(t *testing.T) {
	got := BuildICS("Banda", []CalendarEvent{{UID: "3@bandplan", Name: "Bolo", Date: date(2026, 11, 1)}})
	if !strings.Contains(got, "DTSTART;VALUE=DATE:20261101\r\n") {
		t.Fatalf("expected all-day DTSTART:\n%s", got)
	}
}

func TestBuildAvailableDatesText(t *testing.T) {
	days := []AvailableDay{
		{Date: date(2026, 10, 10), WithSubstitution: true},
		{Date: date(2026, 9, 5)},
		{Date: date(2026, 9, 19), WithSubstitution: true},
		{Date: date(2026, 9, 12)},
	}
	got := BuildAvailableDatesText(days)

	sept := strings.Index(got, "SEPTEMBER 2026")
	oct := strings.Index(got, "OCTOBER 2026")
	if sept == -1 || oct == -1 || sept > oct {
		t.Fatalf("months missing or out of order:\n%s", got)
	}
	if !strings.Contains(got, "Con miembros principales: 5(Sat), 12(Sat)\n") {
		t.Errorf("principal dates wrong:\n%s", got)
	}
	if !strings.Contains(got, "Con sustitutos: 19(Sat)\n") {
		t.Errorf("substitute dates wrong:\n%s", got)
	}
}

func TestBuildAvailableDatesTextEmpty(t *testing.T) {
	got := BuildAvailableDatesText(nil)
	if !strings.Contains(got, "No hay fechas disponibles") {
		t.Fatalf("empty listing:\n%s", got)
	}
}
