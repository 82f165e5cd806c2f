package seed

import "testing"

func TestProductsFixture(t *testing.T) {
	products := Products()
	if len(products) != 10 {
		t.Fatalf("expected 10 demo products, got %d", len(products))
	}

	slugs := make(map[string]bool, len(products))
	for _, p := range products {
		if p.Slug == "" || p.Name == "" || p.ImageURL == "" {
			t.Fatalf("incomplete product %+v", p)
		}
		if p.PriceCents <= 0 {
			t.Fatalf("product %s has non-positive price %d", p.Slug, p.PriceCents)
		}
		if slugs[p.Slug] {
			t.Fatalf("duplicate slug %s", p.Slug)
		}
		slugs[p.Slug] = true
	}
}

func TestProductsReturnsCopy(t *testing.T) {
	first := Products()
	first[0].Name = "mutated"
	if Products()[0].Name == "mutated" {
		t.Fatalf("Products must return a copy of the fixture")
	}
}
