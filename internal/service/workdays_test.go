package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDays_SingleDay(t *testing.T) {
	tests := []struct {
		name     string
		day      time.Time
		expected int
	}{
		{"周一", date(2026, time.March, 2), 1},
		{"周三", date(2026, time.March, 4), 1},
		{"周五", date(2026, time.March, 6), 1},
		{"周六", date(2026, time.March, 7), 0},
		{"周日", date(2026, time.March, 8), 0},
	}

	for _, tt := range tests {
		if got := WorkingDays(tt.day, tt.day); got != tt.expected {
			t.Errorf("%s: WorkingDays(d, d) = %d, 期望 %d", tt.name, got, tt.expected)
		}
	}
}

func TestWorkingDays_Ranges(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"整周一到周五", date(2026, time.March, 2), date(2026, time.March, 6), 5},
		{"跨周末9天", date(2026, time.March, 2), date(2026, time.March, 10), 7},
		{"周五到周日仅1个工作日", date(2026, time.March, 6), date(2026, time.March, 8), 1},
		{"纯周末", date(2026, time.March, 7), date(2026, time.March, 8), 0},
		{"两整周", date(2026, time.March, 2), date(2026, time.March, 15), 10},
	}

	for _, tt := range tests {
		if got := WorkingDays(tt.start, tt.end); got != tt.expected {
			t.Errorf("%s: WorkingDays = %d, 期望 %d", tt.name, got, tt.expected)
		}
	}
}

func TestWorkingDays_EndBeforeStart(t *testing.T) {
	if got := WorkingDays(date(2026, time.March, 6), date(2026, time.March, 2)); got != 0 {
		t.Errorf("end 早于 start 应返回 0，实际=%d", got)
	}
}

func TestWorkingDays_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, time.March, 2, 23, 30, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 3, 0, 15, 0, 0, time.UTC)
	if got := WorkingDays(start, end); got != 2 {
		t.Errorf("时分秒不应影响计数，实际=%d", got)
	}
}
