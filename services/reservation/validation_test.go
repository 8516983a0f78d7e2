package reservation

import "testing"

func TestValidateHexID(t *testing.T) {
	valid := []string{
		"64a0b1c2d3e4f5a6b7c8d9e0",
		"ABCDEF0123456789abcdef01",
	}
	for _, id := range valid {
		if err := validateHexID("expertId", id); err != nil {
			t.Errorf("validateHexID(%q) = %v, want nil", id, err)
		}
	}

	invalid := []string{
		"",
		"64a0b1c2d3e4f5a6b7c8d9e",   // 23 chars
		"64a0b1c2d3e4f5a6b7c8d9e00", // 25 chars
		"64a0b1c2d3e4f5a6b7c8d9gz",  // non-hex
		"not-an-id",
	}
	for _, id := range invalid {
		if err := validateHexID("expertId", id); err == nil {
			t.Errorf("validateHexID(%q) = nil, want error", id)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"ann@x.com", "a.b+c@sub.example.org"}
	for _, email := range valid {
		if err := validateEmail(email); err != nil {
			t.Errorf("validateEmail(%q) = %v, want nil", email, err)
		}
	}

	invalid := []string{"", "  ", "ann", "ann@", "@x.com", "ann@x", "a b@x.com"}
	for _, email := range invalid {
		if err := validateEmail(email); err == nil {
			t.Errorf("validateEmail(%q) = nil, want error", email)
		}
	}
}
