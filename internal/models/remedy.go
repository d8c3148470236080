package models

type Remedy struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Category           string   `json:"category"`
	Ingredients        []string `json:"ingredients"`
	PrepTime           string   `json:"prepTime"`
	Effectiveness      int      `json:"effectiveness"`
	ImageURL           string   `json:"imageUrl,omitempty"`
	Description        string   `json:"description"`
	Instructions       []string `json:"instructions"`
	Benefits           []string `json:"benefits"`
	Precautions        []string `json:"precautions"`
	ScientificEvidence string   `json:"scientificEvidence"`
	Sources            []string `json:"sources"`
}
