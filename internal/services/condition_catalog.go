package services

import "github.com/terraincognita07/remedywhisper/internal/models"

var conditionCatalog = []models.Condition{
	{
		Name:                 "Common Cold",
		Symptoms:             []string{"Runny nose", "Sore throat", "Cough", "Congestion", "Sneezing", "Mild fever"},
		Urgency:              models.UrgencyLow,
		RemedyIDs:            []string{"honey-lemon-tea", "eucalyptus-steam", "ginger-tea"},
		Description:          "A viral infection of the upper respiratory tract that typically resolves within 7-10 days.",
		DoctorRecommendation: "See a doctor if symptoms last more than 10 days or are unusually severe.",
	},
	{
		Name:                 "Seasonal Allergies",
		Symptoms:             []string{"Runny nose", "Sneezing", "Itchy eyes", "Congestion", "Itchy throat"},
		Urgency:              models.UrgencyLow,
		RemedyIDs:            []string{"eucalyptus-steam"},
		Description:          "An immune response to environmental triggers like pollen, dust, or pet dander.",
		DoctorRecommendation: "See a doctor if over-the-counter remedies don't provide relief or if allergies significantly impact daily life.",
	},
	{
		Name:                 "Indigestion",
		Symptoms:             []string{"Bloating", "Nausea", "Stomach pain", "Heartburn", "Gas"},
		Urgency:              models.UrgencyLow,
		RemedyIDs:            []string{"peppermint-tea", "ginger-tea", "apple-cider-vinegar"},
		Description:          "Discomfort in the upper abdomen caused by difficulty digesting food.",
		DoctorRecommendation: "See a doctor if symptoms persist for more than two weeks or are accompanied by weight loss or difficulty swallowing.",
	},
	{
		Name:                 "Migraine",
		Symptoms:             []string{"Severe headache", "Nausea", "Sensitivity to light", "Sensitivity to sound", "Visual disturbances"},
		Urgency:              models.UrgencyMedium,
		RemedyIDs:            []string{},
		Description:          "A neurological condition characterized by severe, debilitating headaches often accompanied by other symptoms.",
		DoctorRecommendation: "See a doctor if you experience frequent or severe migraines, or if the pattern of your headaches changes.",
	},
	{
		Name:                 "Flu (Influenza)",
		Symptoms:             []string{"High fever", "Body aches", "Fatigue", "Headache", "Cough", "Sore throat"},
		Urgency:              models.UrgencyMedium,
		RemedyIDs:            []string{"honey-lemon-tea", "ginger-tea"},
		Description:          "A contagious respiratory illness caused by influenza viruses that can cause mild to severe illness.",
		DoctorRecommendation: "See a doctor if you have difficulty breathing, persistent chest pain, sudden dizziness, or severe weakness.",
	},
	{
		Name:                 "Food Poisoning",
		Symptoms:             []string{"Nausea", "Vomiting", "Diarrhea", "Stomach pain", "Fever"},
		Urgency:              models.UrgencyMedium,
		RemedyIDs:            []string{"ginger-tea"},
		Description:          "Illness caused by eating contaminated food, often resulting in gastrointestinal symptoms.",
		DoctorRecommendation: "See a doctor if you have severe abdominal pain, bloody vomit or stool, signs of dehydration, or a fever above 101.5°F.",
	},
	{
		Name:                 "Appendicitis",
		Symptoms:             []string{"Sharp pain in lower right abdomen", "Nausea", "Vomiting", "Fever", "Loss of appetite"},
		Urgency:              models.UrgencyHigh,
		Description:          "Inflammation of the appendix that requires prompt medical attention and often surgical removal.",
		DoctorRecommendation: "Seek immediate medical attention if you suspect appendicitis. This is a medical emergency.",
	},
	{
		Name:                 "Heart Attack",
		Symptoms:             []string{"Chest pain or pressure", "Pain in arms or jaw", "Shortness of breath", "Cold sweat", "Nausea", "Dizziness"},
		Urgency:              models.UrgencyHigh,
		Description:          "Occurs when blood flow to part of the heart is blocked, causing damage to heart muscle.",
		DoctorRecommendation: "Call emergency services (911) immediately if you suspect a heart attack.",
	},
}

// Medical conditions that call for extra caution with specific catalog conditions.
var conditionWarnings = map[string][]string{
	"asthma":        {"Common Cold", "Flu (Influenza)", "Seasonal Allergies"},
	"diabetes":      {"Flu (Influenza)", "Food Poisoning"},
	"hypertension":  {"Heart Attack", "Migraine"},
	"heart disease": {"Heart Attack", "Flu (Influenza)"},
	"pregnancy":     {"Food Poisoning", "Flu (Influenza)"},
	"copd":          {"Common Cold", "Flu (Influenza)", "Seasonal Allergies"},
}

// Allergens mapped to the remedies that contain them. Ordered so warning
// evaluation is deterministic.
var allergenRemedies = []struct {
	Allergen  string
	RemedyIDs []string
}{
	{Allergen: "honey", RemedyIDs: []string{"honey-lemon-tea"}},
	{Allergen: "lemon", RemedyIDs: []string{"honey-lemon-tea", "apple-cider-vinegar"}},
	{Allergen: "ginger", RemedyIDs: []string{"ginger-tea", "honey-lemon-tea"}},
	{Allergen: "peppermint", RemedyIDs: []string{"peppermint-tea"}},
	{Allergen: "eucalyptus", RemedyIDs: []string{"eucalyptus-steam"}},
	{Allergen: "apple", RemedyIDs: []string{"apple-cider-vinegar"}},
	{Allergen: "dairy", RemedyIDs: []string{}},
	{Allergen: "gluten", RemedyIDs: []string{}},
}

// Conditions returns a copy of the static condition catalog in catalog order.
func Conditions() []models.Condition {
	result := make([]models.Condition, 0, len(conditionCatalog))
	for _, condition := range conditionCatalog {
		result = append(result, cloneCondition(condition))
	}
	return result
}

func cloneCondition(condition models.Condition) models.Condition {
	condition.Symptoms = append([]string{}, condition.Symptoms...)
	if condition.RemedyIDs != nil {
		condition.RemedyIDs = append([]string{}, condition.RemedyIDs...)
	}
	return condition
}
