package taxonomy

import "testing"

func TestLevelClassification(t *testing.T) {
	tax := Default()

	cases := []struct {
		name string
		want Level
	}{
		{"Boat Maintenance", LevelCategory},
		{"boat maintenance", LevelCategory},
		{"Boat Oil Change", LevelSubcategory},
		{"Yacht AC Service", LevelSubcategory},
		{"AC Maintenance & Servicing", LevelLeaf},
		{"Hull Crack or Structural Repair", LevelLeaf},
		{"Submarine Refit", LevelUnknown},
	}

	for _, tc := range cases {
		if got := tax.LevelOf(tc.name); got != tc.want {
			t.Errorf("LevelOf(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestCategoryOfSubcategory(t *testing.T) {
	tax := Default()

	category, ok := tax.CategoryOf("boat oil change")
	if !ok {
		t.Fatal("expected boat oil change to resolve")
	}
	if category != "Boat Maintenance" {
		t.Fatalf("expected Boat Maintenance, got %q", category)
	}

	if _, ok := tax.CategoryOf("nonexistent"); ok {
		t.Fatal("expected unknown subcategory to miss")
	}
}

func TestLeafParent(t *testing.T) {
	tax := Default()

	category, sub, ok := tax.LeafParent("refrigerant charging & leak repair")
	if !ok {
		t.Fatal("expected leaf to resolve")
	}
	if category != "Marine Systems" || sub != "Yacht AC Service" {
		t.Fatalf("unexpected parents: %q / %q", category, sub)
	}
}

func TestCanonicalNormalizesWhitespaceAndCase(t *testing.T) {
	tax := Default()

	canonical, level, ok := tax.Canonical("  yacht   ac SERVICE ")
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if canonical != "Yacht AC Service" {
		t.Fatalf("expected canonical spelling, got %q", canonical)
	}
	if level != LevelSubcategory {
		t.Fatalf("expected subcategory, got %s", level)
	}
}

func TestSubcategoriesListsChildren(t *testing.T) {
	tax := Default()

	subs := tax.Subcategories("Boat Towing")
	if len(subs) != 2 {
		t.Fatalf("expected 2 children, got %d", len(subs))
	}
	if subs[0] != "Get Emergency Tow" {
		t.Fatalf("unexpected first child %q", subs[0])
	}
}
