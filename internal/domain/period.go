package domain

import "fmt"

const (
	MinMonth = 1
	MaxMonth = 12
	MinYear  = 0
	MaxYear  = 9999
)

var monthNames = [...]string{
	"", "ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

// Period is a validated month/year pair
type Period struct {
	Month int
	Year  int
}

// MonthName returns the display name for a 1-indexed month, or "" when out of range
func MonthName(month int) string {
	if month < MinMonth || month > MaxMonth {
		return ""
	}
	return monthNames[month]
}

// ValidMonth reports whether m is within [1,12]
func ValidMonth(m int) bool {
	return m >= MinMonth && m <= MaxMonth
}

// ValidYear reports whether y fits the 4-digit display width
func ValidYear(y int) bool {
	return y >= MinYear && y <= MaxYear
}

// MonthName returns the name of the period's month
func (p Period) MonthName() string {
	return MonthName(p.Month)
}

// String renders the period as "JULIO 2024"
func (p Period) String() string {
	return fmt.Sprintf("%s %04d", p.MonthName(), p.Year)
}
