package assess

import (
	"math"
	"time"
)

// yearDuration is the year length used for chronological age, matching
// the backend's 365.25-day convention.
const yearDuration = time.Duration(365.25 * 24 * float64(time.Hour))

// Classification labels the coefficient bands shown in the console.
type Classification string

// Classification values, ordered from highest to lowest coefficient.
const (
	ClassAdequate Classification = "Desarrollo adecuado"
	ClassMild     Classification = "Retraso leve"
	ClassModerate Classification = "Retraso moderado"
	ClassSevere   Classification = "Retraso severo"
)

// AgeInYears returns the chronological age in whole years at the given
// instant, using the 365.25-day year. Negative spans (birthdate in the
// future) yield 0.
func AgeInYears(birthdate, at time.Time) int {
	elapsed := at.Sub(birthdate)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / yearDuration)
}

// AgeInMonths returns the chronological age in whole calendar months at
// the given instant. Negative spans yield 0.
func AgeInMonths(birthdate, at time.Time) int {
	if !at.After(birthdate) {
		return 0
	}

	years := at.Year() - birthdate.Year()
	months := int(at.Month()) - int(birthdate.Month())
	total := years*12 + months
	if at.Day() < birthdate.Day() {
		total--
	}
	if total < 0 {
		return 0
	}
	return total
}

// DevelopmentAge estimates the development age from the share of
// completed checklist items, rounded to the nearest whole year. A zero
// or negative total yields 0.
func DevelopmentAge(completed, total, chronologicalAge int) int {
	if total <= 0 || completed <= 0 || chronologicalAge <= 0 {
		return 0
	}
	if completed > total {
		completed = total
	}
	ratio := float64(completed) / float64(total)
	return int(math.Round(ratio * float64(chronologicalAge)))
}

// Coefficient returns the development coefficient (QD) as a rounded
// percentage. A chronological age of 0 yields 0 rather than dividing.
func Coefficient(developmentAge, chronologicalAge int) int {
	if chronologicalAge <= 0 {
		return 0
	}
	return int(math.Round(float64(developmentAge) / float64(chronologicalAge) * 100))
}

// Classify maps a coefficient percentage onto its display band.
func Classify(coefficient int) Classification {
	switch {
	case coefficient >= 85:
		return ClassAdequate
	case coefficient >= 70:
		return ClassMild
	case coefficient >= 50:
		return ClassModerate
	default:
		return ClassSevere
	}
}
