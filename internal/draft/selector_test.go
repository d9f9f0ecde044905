package draft_test

import (
	"reflect"
	"testing"

	"photodesk/internal/draft"

	"github.com/google/uuid"
)

func pickerOptions() []draft.Option {
	return []draft.Option{
		{ID: uuid.New(), Label: "Jane Doe", Company: "Ray White"},
		{ID: uuid.New(), Label: "John Smith", Company: "LJ Hooker"},
		{ID: uuid.New(), Label: "Daytime photos"},
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	selector := draft.NewSelector(pickerOptions())

	if got := selector.Filter(""); len(got) != 3 {
		t.Fatalf("filter(\"\") = %d options, want 3", len(got))
	}
	if got := selector.Filter("   "); len(got) != 3 {
		t.Fatalf("whitespace query = %d options, want 3", len(got))
	}
}

func TestFilterMatchesLabelAndCompany(t *testing.T) {
	selector := draft.NewSelector(pickerOptions())

	byLabel := selector.Filter("jane")
	if len(byLabel) != 1 || byLabel[0].Label != "Jane Doe" {
		t.Fatalf("filter by label = %v", byLabel)
	}

	byCompany := selector.Filter("HOOKER")
	if len(byCompany) != 1 || byCompany[0].Label != "John Smith" {
		t.Fatalf("filter by company = %v", byCompany)
	}

	if got := selector.Filter("nobody"); len(got) != 0 {
		t.Fatalf("filter with no match = %v, want empty", got)
	}
}

func TestToggleFiresOnChange(t *testing.T) {
	options := pickerOptions()
	selector := draft.NewSelector(options)

	var fired [][]uuid.UUID
	selector.OnChange = func(ids []uuid.UUID) {
		fired = append(fired, ids)
	}

	selector.Toggle(options[0].ID)
	selector.Toggle(options[1].ID)

	want := []uuid.UUID{options[0].ID, options[1].ID}
	if !reflect.DeepEqual(selector.Value(), want) {
		t.Fatalf("selection = %v, want %v", selector.Value(), want)
	}
	if len(fired) != 2 {
		t.Fatalf("OnChange fired %d times, want 2", len(fired))
	}

	// Toggling again deselects, preserving the order of the rest.
	selector.Toggle(options[0].ID)
	if got := selector.Value(); len(got) != 1 || got[0] != options[1].ID {
		t.Fatalf("selection after deselect = %v", got)
	}
}

func TestSetValueDoesNotFireOnChange(t *testing.T) {
	options := pickerOptions()
	selector := draft.NewSelector(options)

	fired := 0
	selector.OnChange = func([]uuid.UUID) { fired++ }

	selector.SetValue([]uuid.UUID{options[2].ID, options[2].ID})

	if fired != 0 {
		t.Fatalf("OnChange fired %d times on SetValue, want 0", fired)
	}
	if got := selector.Value(); len(got) != 1 {
		t.Fatalf("SetValue kept duplicates: %v", got)
	}
}
