package dateutil

import "time"

// IsLeapYear returns true for Gregorian leap years:
// divisible by 4, except century years not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month (1-12).
// The result is leap-year aware.
func DaysInMonth(year, month int) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the 1st of the given month
// as an index with Sunday=0 .. Saturday=6.
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}
