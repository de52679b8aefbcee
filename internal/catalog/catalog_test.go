package catalog

import "testing"

func TestCatalogContents(t *testing.T) {
	pkgs := Packages()
	if len(pkgs) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(pkgs))
	}

	wantPrices := map[string]int{"basic": 29900, "professional": 59900, "enterprise": 149900}
	for _, p := range pkgs {
		want, ok := wantPrices[p.ID]
		if !ok {
			t.Fatalf("unexpected package %s", p.ID)
		}
		if p.Price != want {
			t.Fatalf("package %s price = %d, want %d", p.ID, p.Price, want)
		}
		if p.DurationDays != 30 {
			t.Fatalf("package %s duration = %d, want 30", p.ID, p.DurationDays)
		}
		if p.NameUA == "" || len(p.FeaturesUA) != len(p.Features) {
			t.Fatalf("package %s is missing localized display text", p.ID)
		}
	}
}

func TestGet(t *testing.T) {
	p := Get("professional")
	if p == nil {
		t.Fatal("professional package not found")
	}
	if !p.Popular {
		t.Fatal("professional package must be flagged popular")
	}
	if Get("platinum") != nil {
		t.Fatal("unknown id must return nil")
	}
}
