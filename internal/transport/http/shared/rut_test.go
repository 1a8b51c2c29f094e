package shared

import "testing"

func TestNormalizeRUT(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12.345.678-5", "12345678-5"},
		{"12345678-5", "12345678-5"},
		{"123456785", "12345678-5"},
		{" 9.876.543-k ", "9876543-K"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeRUT(tc.in); got != tc.want {
			t.Errorf("NormalizeRUT(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidRUT(t *testing.T) {
	valid := []string{"12345678-5", "12.345.678-5", "11111111-1", "55555-K"}
	for _, rut := range valid {
		if !ValidRUT(rut) {
			t.Errorf("expected %q to be valid", rut)
		}
	}

	invalid := []string{"", "12345678-6", "abc-1", "12345678", "-5", "12345678-55"}
	for _, rut := range invalid {
		if ValidRUT(rut) {
			t.Errorf("expected %q to be invalid", rut)
		}
	}
}
