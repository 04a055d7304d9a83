package models

import "fmt"

// FormatCents renders an amount in cents as a plain two-decimal string.
// This is the only place amounts are rounded; everything upstream works in
// integer cents.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
