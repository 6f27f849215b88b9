package helpers

import "testing"

func TestFormatIDR(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{15000, "Rp 15.000"},
		{28000, "Rp 28.000"},
		{1250000, "Rp 1.250.000"},
		{-42000, "-Rp 42.000"},
	}

	for _, tc := range cases {
		if got := FormatIDR(tc.amount); got != tc.want {
			t.Errorf("FormatIDR(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
