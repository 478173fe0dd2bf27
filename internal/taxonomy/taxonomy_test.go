package taxonomy

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultHasSixCategories(t *testing.T) {
	tax := Default()
	if len(tax.Categories) != 6 {
		t.Fatalf("got %d categories, want 6", len(tax.Categories))
	}
	if tax.Categories[0].Name != "유통" {
		t.Errorf("first category = %q, want 유통", tax.Categories[0].Name)
	}
	for _, c := range tax.Categories {
		if len(c.Keywords) == 0 {
			t.Errorf("default category %q has no keywords", c.Name)
		}
	}
}

func TestAddCategory(t *testing.T) {
	tax := &Taxonomy{}

	if !tax.AddCategory("유통") {
		t.Fatal("adding a new category should report a change")
	}
	if tax.AddCategory("유통") {
		t.Error("adding an existing category should be a no-op")
	}
	if kws, ok := tax.Get("유통"); !ok || len(kws) != 0 {
		t.Errorf("new category should exist with empty keywords, got %v, %v", kws, ok)
	}
}

func TestAddKeyword(t *testing.T) {
	tax := &Taxonomy{}
	tax.AddCategory("유통")

	changed, err := tax.AddKeyword("유통", "이마트")
	if err != nil || !changed {
		t.Fatalf("AddKeyword = %v, %v, want change and no error", changed, err)
	}

	changed, err = tax.AddKeyword("유통", "이마트")
	if err != nil || changed {
		t.Errorf("duplicate AddKeyword = %v, %v, want no-op", changed, err)
	}

	if _, err := tax.AddKeyword("없는그룹", "이마트"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("AddKeyword to absent category: got %v, want ErrUnknownCategory", err)
	}
}

func TestAddKeywordPreservesOrder(t *testing.T) {
	tax := &Taxonomy{}
	tax.AddCategory("유통")
	for _, kw := range []string{"홈플러스", "이마트", "롯데마트"} {
		if _, err := tax.AddKeyword("유통", kw); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"홈플러스", "이마트", "롯데마트"}
	if got, _ := tax.Get("유통"); !reflect.DeepEqual(got, want) {
		t.Errorf("keywords = %v, want %v", got, want)
	}
}

func TestRemove(t *testing.T) {
	tax := Default()

	if !tax.RemoveKeyword("유통", "이마트") {
		t.Error("removing an existing keyword should report a change")
	}
	if tax.RemoveKeyword("유통", "이마트") {
		t.Error("removing an absent keyword should be a no-op")
	}
	if tax.RemoveKeyword("없는그룹", "이마트") {
		t.Error("removing from an absent category should be a no-op")
	}

	if !tax.RemoveCategory("유통") {
		t.Error("removing an existing category should report a change")
	}
	if tax.RemoveCategory("유통") {
		t.Error("removing an absent category should be a no-op")
	}
	if _, ok := tax.Get("유통"); ok {
		t.Error("removed category still present")
	}
}

func TestFlattenKeepsDuplicateOccurrences(t *testing.T) {
	tax := &Taxonomy{Categories: []Category{
		{Name: "a", Keywords: []string{"이마트", "햄"}},
		{Name: "b", Keywords: []string{"햄"}},
		{Name: "c", Keywords: nil},
	}}

	want := []string{"이마트", "햄", "햄"}
	if got := tax.Flatten(); !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}
}
