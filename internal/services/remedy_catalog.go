package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/remedywhisper/internal/models"
)

var ErrUnknownRemedy = errors.New("unknown remedy")

func ListRemedies() []models.Remedy {
	result := make([]models.Remedy, 0, len(remedyCatalog))
	for _, remedy := range remedyCatalog {
		result = append(result, cloneRemedy(remedy))
	}
	return result
}

func RemedyByID(id string) (models.Remedy, bool) {
	id = strings.TrimSpace(id)
	for _, remedy := range remedyCatalog {
		if remedy.ID == id {
			return cloneRemedy(remedy), true
		}
	}
	return models.Remedy{}, false
}

func IsKnownRemedy(id string) bool {
	_, ok := RemedyByID(id)
	return ok
}

// SearchRemedies filters the catalog by a free-text query over title,
// category and ingredients, then by exact category when one is given.
func SearchRemedies(query string, category string) []models.Remedy {
	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.TrimSpace(category)

	result := make([]models.Remedy, 0, len(remedyCatalog))
	for _, remedy := range remedyCatalog {
		if query != "" && !remedyMatchesQuery(remedy, query) {
			continue
		}
		if category != "" && remedy.Category != category {
			continue
		}
		result = append(result, cloneRemedy(remedy))
	}
	return result
}

func RemediesByIngredient(ingredient string) []models.Remedy {
	needle := strings.ToLower(strings.TrimSpace(ingredient))
	result := make([]models.Remedy, 0)
	if needle == "" {
		return result
	}
	for _, remedy := range remedyCatalog {
		for _, candidate := range remedy.Ingredients {
			if strings.Contains(strings.ToLower(candidate), needle) {
				result = append(result, cloneRemedy(remedy))
				break
			}
		}
	}
	return result
}

func RemedyCategories() []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, remedy := range remedyCatalog {
		if _, ok := seen[remedy.Category]; ok {
			continue
		}
		seen[remedy.Category] = struct{}{}
		categories = append(categories, remedy.Category)
	}
	return categories
}

func remedyMatchesQuery(remedy models.Remedy, query string) bool {
	if strings.Contains(strings.ToLower(remedy.Title), query) ||
		strings.Contains(strings.ToLower(remedy.Category), query) {
		return true
	}
	for _, ingredient := range remedy.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), query) {
			return true
		}
	}
	return false
}

func cloneRemedy(remedy models.Remedy) models.Remedy {
	remedy.Ingredients = append([]string{}, remedy.Ingredients...)
	remedy.Instructions = append([]string{}, remedy.Instructions...)
	remedy.Benefits = append([]string{}, remedy.Benefits...)
	remedy.Precautions = append([]string{}, remedy.Precautions...)
	remedy.Sources = append([]string{}, remedy.Sources...)
	return remedy
}
