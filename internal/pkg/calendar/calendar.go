package calendar

import "fmt"

// Date is a plain day/month/year value as supplied at the boundary.
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether y is a Gregorian leap year.
func IsLeap(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// DaysInMonth returns the number of days in month for the given year.
func DaysInMonth(month, year int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthDays[month-1]
}

// Ordinal maps d to a monotonic day count since a fixed epoch. The value is
// only meaningful for comparing and differencing dates.
func Ordinal(d Date) int {
	days := d.Year*365 + d.Day
	for m := 1; m < d.Month; m++ {
		days += monthDays[m-1]
		if m == 2 && IsLeap(d.Year) {
			days++
		}
	}
	y := d.Year - 1
	days += y/4 - y/100 + y/400
	return days
}

// DaysBetween returns the signed number of days from a to b: positive when b
// is after a, negative when before, zero when equal.
func DaysBetween(a, b Date) int {
	return Ordinal(b) - Ordinal(a)
}

// AddDays returns the date n days after start, rolling day overflow into
// following months and years, with 29-day Februaries in leap years.
func AddDays(start Date, n int) Date {
	d := start
	d.Day += n
	for {
		md := DaysInMonth(d.Month, d.Year)
		if d.Day <= md {
			break
		}
		d.Day -= md
		d.Month++
		if d.Month > 12 {
			d.Month = 1
			d.Year++
		}
	}
	return d
}

// Valid reports whether d is structurally acceptable: positive day and year,
// month within 1..12. Day values past the end of the month are allowed here,
// matching the historical boundary behavior.
func Valid(d Date) bool {
	return d.Day > 0 && d.Month >= 1 && d.Month <= 12 && d.Year > 0
}

// String renders d as dd/mm/yyyy.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}
