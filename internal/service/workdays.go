package service

import "time"

// WorkingDays 计算 [start, end] 闭区间内的工作日数量
// 工作日 = 非周六/周日的自然日；不考虑法定节假日
// end 早于 start 时返回 0
func WorkingDays(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			// 周末不计
		default:
			days++
		}
	}
	return days
}

// truncateToDay 去掉时分秒，保留日期部分
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
