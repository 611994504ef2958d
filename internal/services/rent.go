package services

import "time"

const day = 24 * time.Hour

// RentalDays returns the number of billable days between issue and return.
// Any started day counts as a full day and a rental is billed at least one day.
func RentalDays(issueDate, returnDate time.Time) int {
	elapsed := returnDate.Sub(issueDate)
	if elapsed <= 0 {
		return 1
	}

	days := int(elapsed / day)
	if elapsed%day != 0 {
		days++
	}
	return max(days, 1)
}

// ComputeRent returns the rent owed for a rental of the given span.
func ComputeRent(issueDate, returnDate time.Time, rentPerDay float64) float64 {
	return float64(RentalDays(issueDate, returnDate)) * rentPerDay
}
