package validation

import "testing"

func TestTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Ship release", "Ship release", true},
		{"  padded  ", "padded", true},
		{"", "", false},
		{"   ", "", false},
		{"\t\n", "", false},
	}

	for _, tt := range tests {
		got, ok := Title(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Title(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDescription(t *testing.T) {
	if got := Description("  notes  "); got != "notes" {
		t.Errorf("Description = %q, want %q", got, "notes")
	}
	if got := Description("   "); got != "" {
		t.Errorf("Description of blank input = %q, want empty", got)
	}
}
