package csvmap

import "testing"

// TestNormalizeIDFieldScientific verifies exact integer reconstruction
// for spreadsheet-corrupted IDs. These values exceed the 53-bit float
// precision boundary, so a float round-trip would corrupt them.
func TestNormalizeIDFieldScientific(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.04882E+14", "104882000000000"},
		{"1.04882e+14", "104882000000000"},
		{"1.2345678901234E+15", "1234567890123400"},
		{"9.87654321098765E+14", "987654321098765"},
		{"5E+10", "50000000000"},
		{"1.5E+1", "15"},
		{"2.30E+2", "230"},
	}
	for _, c := range cases {
		if got := NormalizeIDField(c.in); got != c.want {
			t.Errorf("NormalizeIDField(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestNormalizeIDFieldWrapping covers quote and Excel formula wrappers.
func TestNormalizeIDFieldWrapping(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"104882000000000", "104882000000000"},
		{`"104882000000000"`, "104882000000000"},
		{`="104882000000000"`, "104882000000000"},
		{"'104882000000000'", "104882000000000"},
		{"  104882000000000  ", "104882000000000"},
	}
	for _, c := range cases {
		if got := NormalizeIDField(c.in); got != c.want {
			t.Errorf("NormalizeIDField(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestNormalizeIDFieldPassthrough checks that non-integer shapes are
// returned unchanged for the validator to reject.
func TestNormalizeIDFieldPassthrough(t *testing.T) {
	cases := []string{
		"not-an-id",
		"1.5e-3",   // negative exponent, not an integer
		"1.23E+1",  // leftover fraction digits after the shift
		"",
	}
	for _, in := range cases {
		if got := NormalizeIDField(in); got != in {
			t.Errorf("NormalizeIDField(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestIsSciNotation(t *testing.T) {
	if !IsSciNotation("1.04882E+14") {
		t.Fatal("1.04882E+14 not detected as scientific notation")
	}
	if !IsSciNotation(`="1.04882e+14"`) {
		t.Fatal("wrapped scientific notation not detected")
	}
	if IsSciNotation("104882000000000") {
		t.Fatal("plain digits detected as scientific notation")
	}
	if IsSciNotation("engage") {
		t.Fatal("word containing 'e' detected as scientific notation")
	}
}
