package cli

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "Shree Weaving", 28, "Shree Weaving"},
		{"exactly at limit", "abcdefghij", 10, "abcdefghij"},
		{"over limit", "abcdefghijk", 10, "abcdefghi…"},
		{"multi-byte within limit", "héllo", 5, "héllo"},
		{"multi-byte over limit", "ΑΒΓΔΕΖΗΘΙΚΛ", 10, "ΑΒΓΔΕΖΗΘΙ…"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.n); got != tc.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
			}
		})
	}
}
