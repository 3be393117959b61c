package congress

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFilterDropsUnsetValues(t *testing.T) {
	testCases := []struct {
		name     string
		input    params
		expected params
	}{
		{
			name:     "empty",
			input:    params{},
			expected: nil,
		},
		{
			name:     "all unset",
			input:    params{}.put("limit", nil).put("offset", nil),
			expected: nil,
		},
		{
			name:  "mixed keeps insertion order",
			input: params{}.put("limit", 5).put("offset", nil).put("sort", "asc"),
			expected: params{
				{key: "limit", value: 5},
				{key: "sort", value: "asc"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.input.filter()
			if diff := cmp.Diff(tc.expected, got, cmp.AllowUnexported(param{})); diff != "" {
				t.Fatal(diff)
			}
			// filtering twice equals filtering once
			if diff := cmp.Diff(got, got.filter(), cmp.AllowUnexported(param{})); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestParamsValues(t *testing.T) {
	got := params{}.
		putInt("limit", Int(10)).
		putInt("offset", nil).
		putString("sort", "desc").
		putString("format", "").
		values()

	expected := map[string]string{
		"limit": "10",
		"sort":  "desc",
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestFiltersParams(t *testing.T) {
	from := time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)
	got := Filters{
		Limit:        Int(20),
		FromDateTime: &from,
		Sort:         "updateDate+desc",
	}.params().values()

	expected := map[string]string{
		"limit":        "20",
		"fromDateTime": "2021-01-02T03:04:05Z",
		"sort":         "updateDate+desc",
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestFiltersZeroValueHasNoParams(t *testing.T) {
	got := Filters{}.params().values()
	if diff := cmp.Diff(map[string]string{}, got); diff != "" {
		t.Fatal(diff)
	}
}
