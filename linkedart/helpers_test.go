package linkedart

import (
	"os"
	"path/filepath"
	"testing"
)

// loadPainting decodes the painting fixture used across the getter tests.
func loadPainting(t *testing.T) Object {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "object.json"))
	if err != nil {
		t.Fatalf("Failed to read test file: %v", err)
	}
	o, err := DecodeBytes(data)
	if err != nil {
		t.Fatalf("Failed to decode test file: %v", err)
	}
	return o
}

func TestPrimaryName(t *testing.T) {
	o := loadPainting(t)

	if got := PrimaryName(o, "en", nil); got != "Young Woman Picking Fruit" {
		t.Errorf("PrimaryName(en) = %q", got)
	}
	if got := PrimaryName(o, "fr", nil); got != "Jeune femme cueillant des fruits" {
		t.Errorf("PrimaryName(fr) = %q", got)
	}
	if got := PrimaryName(o, "", nil); got != "Young Woman Picking Fruit" {
		t.Errorf("PrimaryName(unconstrained) = %q", got)
	}
	if got := PrimaryName(o, "es", nil); got != "" {
		t.Errorf("PrimaryName(es) = %q, want empty", got)
	}
	if got := PrimaryName(o, "es", &LanguageOptions{Fallback: "en"}); got != "Young Woman Picking Fruit" {
		t.Errorf("PrimaryName(es with fallback) = %q", got)
	}
}

func TestPrimaryNames(t *testing.T) {
	o := loadPainting(t)

	got := PrimaryNames(o, "", nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 preferred names, got %d", len(got))
	}
	if got[0] != "Young Woman Picking Fruit" || got[1] != "Jeune femme cueillant des fruits" {
		t.Errorf("names out of order: %q, %q", got[0], got[1])
	}
}

func TestNames(t *testing.T) {
	o := loadPainting(t)

	got := Names(o, "", nil)
	if len(got) != 2 {
		t.Fatalf("Names = %d entries, want 2", len(got))
	}
	if got[0] != "Young Woman Picking Fruit" || got[1] != "Jeune femme cueillant des fruits" {
		t.Errorf("names out of order: %q, %q", got[0], got[1])
	}
	if got := Names(o, "fr", nil); len(got) != 1 || got[0] != "Jeune femme cueillant des fruits" {
		t.Errorf("Names(fr) = %v", got)
	}
}

func TestIdentifiers(t *testing.T) {
	o := loadPainting(t)

	ids := Identifiers(o)
	if len(ids) != 1 {
		t.Fatalf("Identifiers = %d entries, want 1", len(ids))
	}
	if ids[0] != "22.8" {
		t.Errorf("identifier = %q", ids[0])
	}
}

func TestAccessionNumbers(t *testing.T) {
	o := loadPainting(t)

	got := AccessionNumbers(o)
	if len(got) != 1 || got[0] != "22.8" {
		t.Fatalf("AccessionNumbers = %v", got)
	}
}

func TestCarriedOutBy(t *testing.T) {
	o := loadPainting(t)

	got := CarriedOutBy(o)
	if len(got) != 1 {
		t.Fatalf("expected 1 actor, got %d", len(got))
	}
	if got[0].ID() != "https://example.org/agents/cassatt" {
		t.Errorf("actor id = %q", got[0].ID())
	}
	if got[0].Label() != "Mary Cassatt" {
		t.Errorf("actor label = %q", got[0].Label())
	}
}

func TestStatementGetters(t *testing.T) {
	o := loadPainting(t)

	if got := Cultures(o, "", nil); len(got) != 1 || got[0] != "American" {
		t.Errorf("Cultures = %v", got)
	}
	if got := MaterialStatements(o, "", nil); len(got) != 1 || got[0] != "Oil on canvas" {
		t.Errorf("MaterialStatements = %v", got)
	}
	if got := DimensionsDescriptions(o, "", nil); len(got) != 1 || got[0] != "framed: 129.54 x 104.14 x 11.43 cm" {
		t.Errorf("DimensionsDescriptions = %v", got)
	}
	if got := AcknowledgementStatements(o, "", nil); len(got) != 1 || got[0] != "Patrons Art Fund" {
		t.Errorf("AcknowledgementStatements = %v", got)
	}
	if got := ProvenanceStatements(o, "", nil); len(got) != 0 {
		t.Errorf("ProvenanceStatements = %v, want none", got)
	}
}

func TestDescriptions_LanguageConstrained(t *testing.T) {
	o := loadPainting(t)

	got := Descriptions(o, "en", nil)
	if len(got) != 1 || got[0] != "Mary Cassatt painted Young Woman Picking Fruit in 1891." {
		t.Fatalf("Descriptions(en) = %v", got)
	}
	if got := Descriptions(o, "fr", nil); len(got) != 0 {
		t.Errorf("Descriptions(fr) = %v, want none", got)
	}
}

func TestWorkTypes(t *testing.T) {
	o := loadPainting(t)

	got := WorkTypes(o)
	if len(got) != 1 {
		t.Fatalf("expected 1 work type, got %d", len(got))
	}
	if got[0].Label() != "Paintings" {
		t.Errorf("work type label = %q", got[0].Label())
	}
}

func TestDigitalImages(t *testing.T) {
	o := loadPainting(t)

	got := DigitalImages(o)
	if len(got) != 1 || got[0] != "https://example.org/iiif/1922-8/full/full/0/default.jpg" {
		t.Fatalf("DigitalImages = %v", got)
	}
}

func TestDigitalImages_FallsBackToRepresentationID(t *testing.T) {
	o := Object{
		"representation": []interface{}{
			map[string]interface{}{
				"id":            "https://example.org/images/1.jpg",
				"classified_as": []interface{}{map[string]interface{}{"id": "aat:300215302"}},
			},
		},
	}

	got := DigitalImages(o)
	if len(got) != 1 || got[0] != "https://example.org/images/1.jpg" {
		t.Fatalf("DigitalImages = %v", got)
	}
}

func TestAttributedByAndAssignedBy(t *testing.T) {
	o := Object{
		"attributed_by": []interface{}{
			map[string]interface{}{
				"type":       "AttributeAssignment",
				"attributed": []interface{}{map[string]interface{}{"id": "a"}, map[string]interface{}{"id": "b"}},
			},
			map[string]interface{}{
				"type":       "AttributeAssignment",
				"attributed": map[string]interface{}{"id": "c"},
			},
			map[string]interface{}{
				"type":       "Activity",
				"attributed": map[string]interface{}{"id": "not-an-assignment"},
			},
		},
		"assigned_by": []interface{}{
			map[string]interface{}{
				"type":     "AttributeAssignment",
				"assigned": map[string]interface{}{"id": "d"},
			},
		},
	}

	attributed := AttributedBy(o, "attributed")
	if len(attributed) != 3 {
		t.Fatalf("AttributedBy = %d entries, want 3", len(attributed))
	}
	if attributed[0].ID() != "a" || attributed[1].ID() != "b" || attributed[2].ID() != "c" {
		t.Errorf("AttributedBy order: %q, %q, %q", attributed[0].ID(), attributed[1].ID(), attributed[2].ID())
	}

	assigned := AssignedBy(o, "assigned")
	if len(assigned) != 1 || assigned[0].ID() != "d" {
		t.Fatalf("AssignedBy = %d entries", len(assigned))
	}

	if got := AssignedBy(o, "carried_out_by"); len(got) != 0 {
		t.Errorf("AssignedBy over an absent field: got %d entries", len(got))
	}
	if got := AttributedBy(Object{}, "attributed"); got == nil || len(got) != 0 {
		t.Errorf("AttributedBy on empty object: got %v, want empty non-nil", got)
	}
}

func TestRemoveDuplicateIDs(t *testing.T) {
	a1 := Object{"id": "a", "content": "first"}
	a2 := Object{"id": "a", "content": "second"}
	b := Object{"id": "b"}
	noID1 := Object{"content": "x"}
	noID2 := Object{"content": "y"}

	got := RemoveDuplicateIDs([]Object{a1, b, a2, noID1, noID2})
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].Content() != "first" {
		t.Errorf("first occurrence should win, got %q", got[0].Content())
	}
	if got[1].ID() != "b" {
		t.Errorf("entry 1 = %q", got[1].ID())
	}
	if got[2].Content() != "x" {
		t.Errorf("entries without ids collapse to the first, got %q", got[2].Content())
	}
}
