package taxonomy

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "keywords.yaml"))
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	store := tempStore(t)

	got := store.Load()
	if !reflect.DeepEqual(got, Default()) {
		t.Errorf("Load() on missing file = %+v, want defaults", got)
	}
}

func TestLoadCorruptFileFallsBackToDefault(t *testing.T) {
	store := tempStore(t)
	if err := os.WriteFile(store.Path(), []byte("- not\n- a\n- mapping\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := store.Load()
	if !reflect.DeepEqual(got, Default()) {
		t.Errorf("Load() on corrupt file = %+v, want defaults", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := tempStore(t)
	tax := &Taxonomy{Categories: []Category{
		{Name: "유통", Keywords: []string{"이마트", "식품 매출"}},
		{Name: "빈그룹", Keywords: []string{}},
		{Name: "정책/규제", Keywords: []string{"식약처"}},
	}}

	if err := store.Save(tax); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := store.Load()
	if len(got.Categories) != 3 {
		t.Fatalf("round trip lost categories: %+v", got)
	}
	for i, c := range tax.Categories {
		if got.Categories[i].Name != c.Name {
			t.Errorf("category %d = %q, want %q (order must survive)", i, got.Categories[i].Name, c.Name)
		}
	}
	if kws, _ := got.Get("유통"); !reflect.DeepEqual(kws, []string{"이마트", "식품 매출"}) {
		t.Errorf("keywords for 유통 = %v", kws)
	}
	if kws, ok := got.Get("빈그룹"); !ok || len(kws) != 0 {
		t.Errorf("empty keyword list did not survive: %v, %v", kws, ok)
	}

	// save(load()) then load() again must be stable
	if err := store.Save(got); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if again := store.Load(); !reflect.DeepEqual(again, got) {
		t.Errorf("second round trip diverged: %+v vs %+v", again, got)
	}
}

func TestSaveIsHumanEditableYAML(t *testing.T) {
	store := tempStore(t)
	tax := &Taxonomy{Categories: []Category{
		{Name: "유통", Keywords: []string{"이마트"}},
	}}
	if err := store.Save(tax); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "유통:") || !strings.Contains(text, "이마트") {
		t.Errorf("saved file is not the expected plain mapping:\n%s", text)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	store := tempStore(t)
	if err := store.Save(Default()); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only keywords.yaml, found %v", names)
	}
}

func TestMutationsPersistImmediately(t *testing.T) {
	store := tempStore(t)
	tax := Default()

	if err := store.AddCategory(tax, "수출입"); err != nil {
		t.Fatal(err)
	}
	if err := store.AddKeyword(tax, "수출입", "할랄"); err != nil {
		t.Fatal(err)
	}
	if err := store.RemoveKeyword(tax, "유통", "이마트"); err != nil {
		t.Fatal(err)
	}
	if err := store.RemoveCategory(tax, "경쟁사"); err != nil {
		t.Fatal(err)
	}

	// A fresh load must observe every mutation.
	got := store.Load()
	if kws, ok := got.Get("수출입"); !ok || !reflect.DeepEqual(kws, []string{"할랄"}) {
		t.Errorf("added category/keyword not persisted: %v, %v", kws, ok)
	}
	if kws, _ := got.Get("유통"); contains(kws, "이마트") {
		t.Error("removed keyword still persisted")
	}
	if _, ok := got.Get("경쟁사"); ok {
		t.Error("removed category still persisted")
	}
}

func TestAddKeywordUnknownCategoryDoesNotTouchFile(t *testing.T) {
	store := tempStore(t)
	tax := Default()
	if err := store.Save(tax); err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.AddKeyword(tax, "없는그룹", "이마트"); err == nil {
		t.Fatal("expected ErrUnknownCategory")
	}

	after, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("failed mutation rewrote the keywords file")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
