package repository

import (
	"context"
	"testing"
)

func TestCategoryRepository_ListAndFindBySlug(t *testing.T) {
	resetCatalog(t)
	repo := NewCategoryRepository(testDB)
	ctx := context.Background()

	insertCategory(t, "Men's T-Shirts", "mens-t-shirts")
	insertCategory(t, "Accessories", "accessories")

	categories, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	// Ordered by name
	if categories[0].Slug != "accessories" || categories[1].Slug != "mens-t-shirts" {
		t.Errorf("order = [%s %s], want [accessories mens-t-shirts]", categories[0].Slug, categories[1].Slug)
	}

	category, err := repo.FindBySlug(ctx, "mens-t-shirts")
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if category.Name != "Men's T-Shirts" {
		t.Errorf("got %q, want Men's T-Shirts", category.Name)
	}

	if _, err := repo.FindBySlug(ctx, "missing"); err != ErrCategoryNotFound {
		t.Errorf("got %v, want ErrCategoryNotFound", err)
	}
}
