// Package preference maps a user's stored preference data to the single
// category an upstream query accepts.
package preference

import "newshub/internal/domain"

// DefaultCategory is used whenever no usable preference is present.
const DefaultCategory = "general"

// Resolve picks the effective category for a request. A single-category
// preference wins as-is; a category list contributes its first element
// (upstream queries accept one category per call); anything else degrades
// to DefaultCategory. Resolve never fails.
func Resolve(pref domain.Preference) string {
	switch pref.Kind {
	case domain.PreferenceSingle:
		if pref.Category != "" {
			return pref.Category
		}
	case domain.PreferenceList:
		if len(pref.Categories) > 0 && pref.Categories[0] != "" {
			return pref.Categories[0]
		}
	}
	return DefaultCategory
}
