package domain

import (
	"bytes"
	"encoding/json"
)

// PreferenceKind discriminates the two preference shapes the identity
// subsystem emits. They are not interchangeable: the preferences endpoint
// stores a single-category object, registration stores a category list.
type PreferenceKind int

const (
	PreferenceNone PreferenceKind = iota
	PreferenceSingle
	PreferenceList
)

// Preference is the tagged union carried in identity claims. Exactly one of
// Category or Categories is meaningful, selected by Kind.
type Preference struct {
	Kind       PreferenceKind
	Category   string
	Categories []string
}

// SingleCategory builds a single-category preference.
func SingleCategory(category string) Preference {
	return Preference{Kind: PreferenceSingle, Category: category}
}

// CategoryList builds an ordered-list preference.
func CategoryList(categories []string) Preference {
	return Preference{Kind: PreferenceList, Categories: categories}
}

type singlePayload struct {
	Category string `json:"category"`
}

// MarshalJSON emits the wire shape matching the union arm: an object with a
// category field, a JSON array, or null.
func (p Preference) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PreferenceSingle:
		return json.Marshal(singlePayload{Category: p.Category})
	case PreferenceList:
		if p.Categories == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(p.Categories)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts either shape. Unrecognized shapes degrade to
// PreferenceNone rather than failing; preference data is advisory and
// resolution falls back to the default category.
func (p *Preference) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = Preference{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var categories []string
		if err := json.Unmarshal(trimmed, &categories); err != nil {
			*p = Preference{}
			return nil
		}
		*p = CategoryList(categories)
	case '{':
		var single singlePayload
		if err := json.Unmarshal(trimmed, &single); err != nil || single.Category == "" {
			*p = Preference{}
			return nil
		}
		*p = SingleCategory(single.Category)
	default:
		*p = Preference{}
	}

	return nil
}
