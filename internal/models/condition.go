package models

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

type Condition struct {
	Name                 string   `json:"name"`
	Symptoms             []string `json:"symptoms"`
	Urgency              Urgency  `json:"urgency"`
	RemedyIDs            []string `json:"remedyIds,omitempty"`
	Description          string   `json:"description"`
	DoctorRecommendation string   `json:"doctorRecommendation"`
}
