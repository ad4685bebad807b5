package helper

import "testing"

func TestStripAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"80.000", 80000, true},
		{"80,000", 80000, true},
		{"80 000", 80000, true},
		{"80000", 80000, true},
		{"1.500.000", 1500000, true},
		{"  45.000  ", 45000, true},
		{"", 0, false},
		{"0", 0, false},
		{"12k", 0, false},
		{"-500", 0, false},
		{"...", 0, false},
	}
	for _, tc := range cases {
		got, err := StripAmount(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("StripAmount(%q) = %d, %v; quiero %d", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("StripAmount(%q) debería fallar", tc.in)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1.000",
		80000:   "80.000",
		1500000: "1.500.000",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Errorf("FormatAmount(%d) = %q, quiero %q", in, got, want)
		}
	}
}

func TestStripFormatRoundTrip(t *testing.T) {
	for _, n := range []int{1, 999, 1000, 45000, 1500000} {
		got, err := StripAmount(FormatAmount(n))
		if err != nil || got != n {
			t.Errorf("round trip %d → %q → %d (%v)", n, FormatAmount(n), got, err)
		}
	}
}
