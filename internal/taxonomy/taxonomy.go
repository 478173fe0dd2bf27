// Package taxonomy holds the keyword groups that drive news collection.
//
// A taxonomy is an ordered list of categories, each carrying an ordered list
// of search keywords. Order matters: the pipeline walks categories in
// document order and its duplicate handling depends on that order, so the
// YAML form keeps categories exactly as they appear in the file.
package taxonomy

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownCategory is returned when a keyword mutation names a category
// that does not exist. Unlike removals, this indicates a caller bug.
var ErrUnknownCategory = errors.New("unknown category")

type Category struct {
	Name     string
	Keywords []string
}

type Taxonomy struct {
	Categories []Category
}

// Default is the built-in taxonomy used when no keywords file exists yet or
// the existing one cannot be read.
func Default() *Taxonomy {
	return &Taxonomy{Categories: []Category{
		{Name: "유통", Keywords: []string{"홈플러스", "이마트", "롯데마트", "편의점", "GS25", "CU"}},
		{Name: "육가공/식품", Keywords: []string{"육가공", "햄", "소시지", "냉동식품", "HMR", "밀키트"}},
		{Name: "시장동향", Keywords: []string{"가격인상", "원가", "물가", "식품 매출", "대체육"}},
		{Name: "경쟁사", Keywords: []string{"CJ제일제당", "동원F&B", "대상", "풀무원", "하림"}},
		{Name: "원료/구매", Keywords: []string{"돈육", "계육", "수입육", "곡물가", "환율"}},
		{Name: "정책/규제", Keywords: []string{"식약처", "할당관세", "원산지", "HACCP"}},
	}}
}

func (t *Taxonomy) index(name string) int {
	for i, c := range t.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Get returns the keyword list for a category.
func (t *Taxonomy) Get(name string) ([]string, bool) {
	if i := t.index(name); i >= 0 {
		return t.Categories[i].Keywords, true
	}
	return nil, false
}

// Names returns category names in document order.
func (t *Taxonomy) Names() []string {
	names := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		names = append(names, c.Name)
	}
	return names
}

// Flatten returns every keyword occurrence across all categories, in order.
// Duplicates across categories are kept; scoring counts each occurrence.
func (t *Taxonomy) Flatten() []string {
	var all []string
	for _, c := range t.Categories {
		all = append(all, c.Keywords...)
	}
	return all
}

// AddCategory appends an empty category. Reports whether anything changed;
// an existing name (exact match) is a no-op.
func (t *Taxonomy) AddCategory(name string) bool {
	if t.index(name) >= 0 {
		return false
	}
	t.Categories = append(t.Categories, Category{Name: name, Keywords: []string{}})
	return true
}

// AddKeyword appends a keyword to a category, preserving insertion order.
// Returns ErrUnknownCategory when the category does not exist; adding a
// keyword that is already present is a no-op.
func (t *Taxonomy) AddKeyword(category, keyword string) (bool, error) {
	i := t.index(category)
	if i < 0 {
		return false, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	for _, k := range t.Categories[i].Keywords {
		if k == keyword {
			return false, nil
		}
	}
	t.Categories[i].Keywords = append(t.Categories[i].Keywords, keyword)
	return true, nil
}

// RemoveCategory deletes a category. Absent names are a no-op.
func (t *Taxonomy) RemoveCategory(name string) bool {
	i := t.index(name)
	if i < 0 {
		return false
	}
	t.Categories = append(t.Categories[:i], t.Categories[i+1:]...)
	return true
}

// RemoveKeyword deletes a keyword from a category. An absent category or
// keyword is a no-op.
func (t *Taxonomy) RemoveKeyword(category, keyword string) bool {
	i := t.index(category)
	if i < 0 {
		return false
	}
	for j, k := range t.Categories[i].Keywords {
		if k == keyword {
			t.Categories[i].Keywords = append(t.Categories[i].Keywords[:j], t.Categories[i].Keywords[j+1:]...)
			return true
		}
	}
	return false
}

// MarshalYAML renders the taxonomy as a plain mapping of category name to
// keyword list, keeping category order.
func (t Taxonomy) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range t.Categories {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Name}
		val := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, k := range c.Keywords {
			val.Content = append(val.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k})
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// UnmarshalYAML reads the mapping form back, preserving document order.
// A category with a null value decodes to an empty keyword list.
func (t *Taxonomy) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("keywords file: expected a mapping at line %d", value.Line)
	}
	t.Categories = nil
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		var keywords []string
		if err := valNode.Decode(&keywords); err != nil {
			return fmt.Errorf("keywords for category %q: %w", keyNode.Value, err)
		}
		t.Categories = append(t.Categories, Category{Name: keyNode.Value, Keywords: keywords})
	}
	return nil
}
