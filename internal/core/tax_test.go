package core_test

import (
	"testing"

	"textile-books/internal/core"

	"github.com/shopspring/decimal"
)

func TestParseGSTRate(t *testing.T) {
	tests := []struct {
		name    string
		rate    string
		wantPct string
		wantOK  bool
	}{
		{"standard rate", "18%", "18", true},
		{"half rate", "9%", "9", true},
		{"fractional rate", "2.5%", "2.5", true},
		{"not applicable", "Not Applicable", "0", false},
		{"not applicable lowercase", "not applicable", "0", false},
		{"empty", "", "0", false},
		{"whitespace", "  ", "0", false},
		{"garbage", "eighteen", "0", false},
		{"rate without percent sign", "12", "12", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pct, ok := core.ParseGSTRate(tc.rate)
			if ok != tc.wantOK {
				t.Fatalf("ParseGSTRate(%q) ok = %v, want %v", tc.rate, ok, tc.wantOK)
			}
			if want := decimal.RequireFromString(tc.wantPct); !pct.Equal(want) {
				t.Errorf("ParseGSTRate(%q) = %s, want %s", tc.rate, pct, want)
			}
		})
	}
}

func TestGSTAmount(t *testing.T) {
	base := decimal.NewFromInt(100)

	if got := core.GSTAmount("18%", base); !got.Equal(decimal.NewFromInt(18)) {
		t.Errorf("GSTAmount(18%%, 100) = %s, want 18", got)
	}
	if got := core.GSTAmount("9%", decimal.NewFromInt(1000)); !got.Equal(decimal.NewFromInt(90)) {
		t.Errorf("GSTAmount(9%%, 1000) = %s, want 90", got)
	}
	// Not Applicable contributes zero for any base.
	for _, b := range []int64{0, 1, 100, 987654} {
		if got := core.GSTAmount("Not Applicable", decimal.NewFromInt(b)); !got.IsZero() {
			t.Errorf("GSTAmount(Not Applicable, %d) = %s, want 0", b, got)
		}
	}
}

func TestWithGST(t *testing.T) {
	// vendorAmount=1000, sgst=9%, cgst=9%, igst=Not Applicable → 1180
	got := core.WithGST(decimal.NewFromInt(1000), "9%", "9%", "Not Applicable")
	if !got.Equal(decimal.NewFromInt(1180)) {
		t.Errorf("WithGST(1000, 9%%, 9%%, NA) = %s, want 1180", got)
	}
}
