package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func remedyIDs(t *testing.T, query string, category string) []string {
	t.Helper()
	ids := make([]string, 0)
	for _, remedy := range SearchRemedies(query, category) {
		ids = append(ids, remedy.ID)
	}
	return ids
}

func TestSearchRemediesMatchesTitleCategoryAndIngredients(t *testing.T) {
	if diff := cmp.Diff([]string{"eucalyptus-steam"}, remedyIDs(t, "STEAM", "")); diff != "" {
		t.Fatalf("title search mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"peppermint-tea", "apple-cider-vinegar"}, remedyIDs(t, "digestion", "")); diff != "" {
		t.Fatalf("category search mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"turmeric-milk"}, remedyIDs(t, "black pepper", "")); diff != "" {
		t.Fatalf("ingredient search mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchRemediesCategoryFilter(t *testing.T) {
	if diff := cmp.Diff([]string{"peppermint-tea", "apple-cider-vinegar"}, remedyIDs(t, "honey", "Digestion")); diff != "" {
		t.Fatalf("filtered search mismatch (-want +got):\n%s", diff)
	}
	if ids := remedyIDs(t, "", "Unknown"); len(ids) != 0 {
		t.Fatalf("expected nothing for an unknown category, got %v", ids)
	}
	if ids := remedyIDs(t, "", ""); len(ids) != len(ListRemedies()) {
		t.Fatalf("expected the full catalog, got %v", ids)
	}
}

func TestRemedyByID(t *testing.T) {
	remedy, ok := RemedyByID("ginger-tea")
	if !ok || remedy.Title != "Ginger Tea" {
		t.Fatalf("unexpected remedy: %#v ok=%v", remedy, ok)
	}
	remedy.Ingredients[0] = "changed"

	again, _ := RemedyByID("ginger-tea")
	if again.Ingredients[0] != "Fresh ginger root" {
		t.Fatal("catalog entry was mutated through a returned copy")
	}

	if _, ok := RemedyByID("missing"); ok {
		t.Fatal("expected missing remedy")
	}
	if IsKnownRemedy("missing") || !IsKnownRemedy("turmeric-milk") {
		t.Fatal("IsKnownRemedy returned an unexpected result")
	}
}

func TestRemediesByIngredient(t *testing.T) {
	ids := make([]string, 0)
	for _, remedy := range RemediesByIngredient("lemon") {
		ids = append(ids, remedy.ID)
	}
	if diff := cmp.Diff([]string{"honey-lemon-tea", "ginger-tea", "apple-cider-vinegar"}, ids); diff != "" {
		t.Fatalf("ingredient lookup mismatch (-want +got):\n%s", diff)
	}
	if remedies := RemediesByIngredient(" "); len(remedies) != 0 {
		t.Fatalf("expected nothing for a blank ingredient, got %d", len(remedies))
	}
}

func TestRemedyCategoriesFirstSeenOrder(t *testing.T) {
	want := []string{"Sore Throat", "Nausea", "Inflammation", "Digestion", "Congestion"}
	if diff := cmp.Diff(want, RemedyCategories()); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestConditionsReturnsCatalogCopy(t *testing.T) {
	conditions := Conditions()
	if len(conditions) != 8 {
		t.Fatalf("expected 8 conditions, got %d", len(conditions))
	}
	conditions[0].Symptoms[0] = "changed"
	if Conditions()[0].Symptoms[0] != "Runny nose" {
		t.Fatal("catalog condition was mutated through a returned copy")
	}
}
