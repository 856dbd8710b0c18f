package menu

import (
	"testing"
)

func TestFind_ExactAndQualifiedLabels(t *testing.T) {
	c := NewCatalog()

	cases := []struct {
		label string
		want  string
	}{
		{"Curry", "Curry"},
		{"Menu Curry", "Curry"},
		{"curry seul", "Curry"},
		{"Wings x6", "Wings x6"},
		{"6 wings", "Wings x6"},
		{"cheese naan", "Cheese Naan"},
		{"big cheese", "BigCheese"},
		{"royal bacon", "RoyalBacon"},
	}

	for _, tc := range cases {
		got, _, ok := c.Find(tc.label)
		if !ok {
			t.Fatalf("Find(%q): no match", tc.label)
		}
		if got != tc.want {
			t.Errorf("Find(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestFind_UnknownLabel(t *testing.T) {
	c := NewCatalog()

	if _, _, ok := c.Find("pizza quatre fromages"); ok {
		t.Error("expected no match for an off-menu item")
	}
}

func TestDefaultPrice_BundledByDefault(t *testing.T) {
	c := NewCatalog()

	e, ok := c.Get("Curry")
	if !ok {
		t.Fatal("Curry missing from catalog")
	}
	if !e.HasMenu() {
		t.Fatal("Curry should have a menu price")
	}
	if e.DefaultPrice() != 8.90 {
		t.Errorf("expected default (menu) price 8.90, got %.2f", e.DefaultPrice())
	}
	if e.Seul != 6.90 {
		t.Errorf("expected seul price 6.90, got %.2f", e.Seul)
	}

	frites, _ := c.Get("Frites")
	if frites.HasMenu() {
		t.Error("Frites should be flat-priced")
	}
	if frites.DefaultPrice() != 1.70 {
		t.Errorf("expected flat price 1.70, got %.2f", frites.DefaultPrice())
	}
}

func TestScanTranscript_ConsumesSpecificPhrases(t *testing.T) {
	c := NewCatalog()

	items := c.ScanTranscript("Bonjour, un curry et 6 wings s'il vous plaît")

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(items), items)
	}
	if items[0] != "Curry" {
		t.Errorf("expected Curry first, got %s", items[0])
	}
	if items[1] != "Wings x6" {
		t.Errorf("expected Wings x6, got %s", items[1])
	}
}

func TestScanTranscript_BareExtraDefaultsToSmallest(t *testing.T) {
	c := NewCatalog()

	items := c.ScanTranscript("des wings et des frites")

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(items), items)
	}
	if items[0] != "Wings x3" {
		t.Errorf("expected Wings x3 for bare wings, got %s", items[0])
	}
	if items[1] != "Frites" {
		t.Errorf("expected Frites, got %s", items[1])
	}
}

func TestScanTranscript_NoMatches(t *testing.T) {
	c := NewCatalog()

	if items := c.ScanTranscript("vous êtes ouverts jusqu'à quelle heure ?"); len(items) != 0 {
		t.Errorf("expected no items, got %v", items)
	}
}
