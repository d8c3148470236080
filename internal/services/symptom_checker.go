package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/terraincognita07/remedywhisper/internal/models"
)

const (
	WarningKindCondition = "condition"
	WarningKindAllergy   = "allergy"
)

type WarningReason struct {
	Kind     string   `json:"kind"`
	Triggers []string `json:"triggers"`
}

type ConditionMatch struct {
	models.Condition
	MatchCount          int             `json:"matchCount"`
	MatchScore          float64         `json:"matchScore"`
	Warnings            []WarningReason `json:"warnings,omitempty"`
	PersonalizedWarning string          `json:"personalizedWarning,omitempty"`
}

type SymptomCheckResult struct {
	Emergency bool             `json:"emergency"`
	Matches   []ConditionMatch `json:"matches"`
}

// SymptomsMatch reports whether two symptom descriptions overlap: either one,
// lowercased, contains the other. Blank input never matches.
func SymptomsMatch(userSymptom string, conditionSymptom string) bool {
	left := normalizeSymptom(userSymptom)
	right := normalizeSymptom(conditionSymptom)
	if left == "" || right == "" {
		return false
	}
	return strings.Contains(left, right) || strings.Contains(right, left)
}

// CheckSymptoms scores every catalog condition against the reported symptoms
// and returns the ones sharing at least one symptom, most relevant first.
// Equal scores keep catalog order.
func CheckSymptoms(userSymptoms []string, userAllergies []string, userConditions []string) []ConditionMatch {
	normalized := distinctSymptoms(userSymptoms)
	if len(normalized) == 0 {
		return []ConditionMatch{}
	}

	type ranked struct {
		index int
		match ConditionMatch
	}
	candidates := make([]ranked, 0, len(conditionCatalog))
	for index, condition := range conditionCatalog {
		matchCount := countMatchingSymptoms(normalized, condition.Symptoms)
		if matchCount == 0 {
			continue
		}

		match := ConditionMatch{
			Condition:  cloneCondition(condition),
			MatchCount: matchCount,
			MatchScore: float64(matchCount) / float64(len(condition.Symptoms)),
		}
		match.Warnings = personalizedWarnings(condition, userAllergies, userConditions)
		match.PersonalizedWarning = FormatPersonalizedWarning(match.Warnings)
		candidates = append(candidates, ranked{index: index, match: match})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].match.MatchScore != candidates[j].match.MatchScore {
			return candidates[i].match.MatchScore > candidates[j].match.MatchScore
		}
		return candidates[i].index < candidates[j].index
	})

	result := make([]ConditionMatch, 0, len(candidates))
	for _, candidate := range candidates {
		result = append(result, candidate.match)
	}
	return result
}

// EmergencySymptoms returns the de-duplicated symptoms of every high urgency
// condition in first-seen order.
func EmergencySymptoms() []string {
	seen := make(map[string]struct{})
	symptoms := make([]string, 0)
	for _, condition := range conditionCatalog {
		if condition.Urgency != models.UrgencyHigh {
			continue
		}
		for _, symptom := range condition.Symptoms {
			if _, ok := seen[symptom]; ok {
				continue
			}
			seen[symptom] = struct{}{}
			symptoms = append(symptoms, symptom)
		}
	}
	return symptoms
}

func CheckForEmergencySymptoms(userSymptoms []string) bool {
	emergency := EmergencySymptoms()
	for _, userSymptom := range userSymptoms {
		for _, symptom := range emergency {
			if SymptomsMatch(userSymptom, symptom) {
				return true
			}
		}
	}
	return false
}

// CheckSession runs emergency detection and condition matching for one
// checker session using the allergies and conditions of the given profile.
func CheckSession(symptoms []models.DetailedSymptom, profile models.HealthProfile) SymptomCheckResult {
	names := SymptomNames(symptoms)
	return SymptomCheckResult{
		Emergency: CheckForEmergencySymptoms(names),
		Matches:   CheckSymptoms(names, profile.Allergies, profile.Conditions),
	}
}

func SymptomNames(symptoms []models.DetailedSymptom) []string {
	names := make([]string, 0, len(symptoms))
	for _, symptom := range symptoms {
		names = append(names, symptom.Name)
	}
	return names
}

// FormatPersonalizedWarning renders warning reasons as the user-facing text
// shown next to a matched condition.
func FormatPersonalizedWarning(reasons []WarningReason) string {
	var conditionTriggers, allergyTriggers []string
	for _, reason := range reasons {
		switch reason.Kind {
		case WarningKindCondition:
			conditionTriggers = append(conditionTriggers, reason.Triggers...)
		case WarningKindAllergy:
			allergyTriggers = append(allergyTriggers, reason.Triggers...)
		}
	}

	warning := ""
	if len(conditionTriggers) > 0 {
		warning = fmt.Sprintf("Based on your health profile (%s), this condition requires additional medical attention. Please consult your healthcare provider.", strings.Join(conditionTriggers, ", "))
	}
	if len(allergyTriggers) > 0 {
		if warning != "" {
			warning += fmt.Sprintf(" Also, some suggested remedies may contain ingredients you're allergic to (%s).", strings.Join(allergyTriggers, ", "))
		} else {
			warning = fmt.Sprintf("Some suggested remedies may contain ingredients you're allergic to (%s). Please avoid these or consult your healthcare provider.", strings.Join(allergyTriggers, ", "))
		}
	}
	return warning
}

func personalizedWarnings(condition models.Condition, userAllergies []string, userConditions []string) []WarningReason {
	reasons := make([]WarningReason, 0, 2)

	matchingConditions := make([]string, 0)
	for _, userCondition := range userConditions {
		key := strings.ToLower(strings.TrimSpace(userCondition))
		if containsString(conditionWarnings[key], condition.Name) {
			matchingConditions = append(matchingConditions, userCondition)
		}
	}
	if len(matchingConditions) > 0 {
		reasons = append(reasons, WarningReason{Kind: WarningKindCondition, Triggers: matchingConditions})
	}

	if len(condition.RemedyIDs) > 0 {
		conflicts := make([]string, 0)
		for _, userAllergy := range userAllergies {
			if allergyConflictsWithRemedies(userAllergy, condition.RemedyIDs) {
				conflicts = append(conflicts, userAllergy)
			}
		}
		if len(conflicts) > 0 {
			reasons = append(reasons, WarningReason{Kind: WarningKindAllergy, Triggers: conflicts})
		}
	}

	if len(reasons) == 0 {
		return nil
	}
	return reasons
}

// allergyConflictsWithRemedies matches the declared allergy against allergen
// names by containment, so "mint" flags peppermint remedies.
func allergyConflictsWithRemedies(userAllergy string, remedyIDs []string) bool {
	allergy := strings.ToLower(strings.TrimSpace(userAllergy))
	if allergy == "" {
		return false
	}
	for _, entry := range allergenRemedies {
		if !strings.Contains(entry.Allergen, allergy) {
			continue
		}
		for _, remedyID := range remedyIDs {
			if containsString(entry.RemedyIDs, remedyID) {
				return true
			}
		}
	}
	return false
}

func countMatchingSymptoms(userSymptoms []string, conditionSymptoms []string) int {
	count := 0
	for _, userSymptom := range userSymptoms {
		for _, conditionSymptom := range conditionSymptoms {
			if SymptomsMatch(userSymptom, conditionSymptom) {
				count++
				break
			}
		}
	}
	return count
}

func distinctSymptoms(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		key := normalizeSymptom(value)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, key)
	}
	return result
}

func normalizeSymptom(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
