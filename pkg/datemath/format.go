package datemath

import "fmt"

var shortMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

// FormatLong renders d as "12 mar 2025".
func FormatLong(d Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", d.Day(), shortMonths[d.Month()-1], d.Year())
}

// FormatShort renders d as "DD/MM".
func FormatShort(d Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d", d.Day(), int(d.Month()))
}
