package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/terraincognita07/remedywhisper/internal/services"
)

const emergencyNotice = "EMERGENCY: these symptoms may need immediate medical attention. Call your local emergency number."

// RunCheckCommand runs the condition matcher offline and prints the ranked
// conditions.
func RunCheckCommand(symptoms []string, allergies []string, conditions []string, out io.Writer) error {
	cleaned := make([]string, 0, len(symptoms))
	for _, symptom := range symptoms {
		if symptom = strings.TrimSpace(symptom); symptom != "" {
			cleaned = append(cleaned, symptom)
		}
	}
	if len(cleaned) == 0 {
		return errors.New("at least one symptom is required")
	}

	if services.CheckForEmergencySymptoms(cleaned) {
		fmt.Fprintln(out, emergencyNotice)
	}

	matches := services.CheckSymptoms(cleaned, allergies, conditions)
	if len(matches) == 0 {
		fmt.Fprintln(out, "No matching conditions found.")
		return nil
	}

	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "CONDITION\tURGENCY\tMATCHED\tSCORE")
	for _, match := range matches {
		fmt.Fprintf(writer, "%s\t%s\t%d/%d\t%.0f%%\n",
			match.Name, match.Urgency, match.MatchCount, len(match.Symptoms), match.MatchScore*100)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	for _, match := range matches {
		if match.PersonalizedWarning != "" {
			fmt.Fprintf(out, "%s: %s\n", match.Name, match.PersonalizedWarning)
		}
	}
	return nil
}
