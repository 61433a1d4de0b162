package core_test

import (
	"testing"

	"textile-books/internal/core"
)

// Stored JSON breakdowns are never trusted: anything that fails to decode
// as the expected array yields an empty slice so the rest of the row stays
// usable.
func TestParseQualityDetails(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
	}{
		{"empty input", "", 0},
		{"empty array", "[]", 0},
		{"valid array", `[{"quality":"60x60","quantity":"500","rate":"42"}]`, 1},
		{"two entries", `[{"quality":"60x60","quantity":250},{"quality":"40x40","quantity":250}]`, 2},
		{"truncated json", `[{"quality":"60x60"`, 0},
		{"object instead of array", `{"quality":"60x60","quantity":500}`, 0},
		{"non-numeric quantity", `[{"quality":"60x60","quantity":"lots"}]`, 0},
		{"array of scalars", `[1,2,3]`, 0},
		{"json null", `null`, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := core.ParseQualityDetails([]byte(tc.raw))
			if len(got) != tc.wantLen {
				t.Fatalf("ParseQualityDetails(%q) = %d entries, want %d", tc.raw, len(got), tc.wantLen)
			}
		})
	}
}

func TestParseQualityDetails_ValidValues(t *testing.T) {
	got := core.ParseQualityDetails([]byte(`[{"quality":"60x60","quantity":"500","rate":"42.5"}]`))
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].Quality != "60x60" {
		t.Errorf("Quality = %q, want 60x60", got[0].Quality)
	}
	if got[0].Quantity.String() != "500" || got[0].Rate.String() != "42.5" {
		t.Errorf("Quantity/Rate = %s/%s, want 500/42.5", got[0].Quantity, got[0].Rate)
	}
}

func TestParseSizeDetails(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
	}{
		{"empty input", "", 0},
		{"empty array", "[]", 0},
		{"valid array", `[{"size":"XL","quantity":40},{"size":"L","quantity":60}]`, 2},
		{"truncated json", `[{"size":"XL","qua`, 0},
		{"object instead of array", `{"size":"XL","quantity":40}`, 0},
		{"string quantity", `[{"size":"XL","quantity":"40"}]`, 0},
		{"json null", `null`, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := core.ParseSizeDetails([]byte(tc.raw))
			if len(got) != tc.wantLen {
				t.Fatalf("ParseSizeDetails(%q) = %d entries, want %d", tc.raw, len(got), tc.wantLen)
			}
		})
	}
}
