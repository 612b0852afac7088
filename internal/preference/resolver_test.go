package preference

import (
	"testing"

	"github.com/stretchr/testify/require"

	"newshub/internal/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		pref domain.Preference
		want string
	}{
		{
			name: "no preference data",
			pref: domain.Preference{},
			want: "general",
		},
		{
			name: "single category",
			pref: domain.SingleCategory("sports"),
			want: "sports",
		},
		{
			name: "single category empty string",
			pref: domain.SingleCategory(""),
			want: "general",
		},
		{
			name: "category list picks first",
			pref: domain.CategoryList([]string{"technology", "science"}),
			want: "technology",
		},
		{
			name: "empty category list",
			pref: domain.CategoryList(nil),
			want: "general",
		},
		{
			name: "list with empty first element",
			pref: domain.CategoryList([]string{""}),
			want: "general",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Resolve(tt.pref))
		})
	}
}
