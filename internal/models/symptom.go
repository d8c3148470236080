package models

import "time"

const (
	IntensityMild     = "mild"
	IntensityModerate = "moderate"
	IntensitySevere   = "severe"
)

const (
	DurationUnderDay     = "< 1 day"
	DurationOneToThree   = "1-3 days"
	DurationThreeToSeven = "3-7 days"
	DurationOverWeek     = "> 1 week"
)

type DetailedSymptom struct {
	Name      string `json:"name"`
	Intensity string `json:"intensity"`
	Duration  string `json:"duration"`
}

type SymptomHistory struct {
	Date     time.Time         `json:"date"`
	Symptoms []DetailedSymptom `json:"symptoms"`
	Notes    string            `json:"notes"`
}

func IsValidIntensity(value string) bool {
	switch value {
	case IntensityMild, IntensityModerate, IntensitySevere:
		return true
	default:
		return false
	}
}

func IsValidDuration(value string) bool {
	switch value {
	case DurationUnderDay, DurationOneToThree, DurationThreeToSeven, DurationOverWeek:
		return true
	default:
		return false
	}
}
