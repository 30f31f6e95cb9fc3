package normalize

import "testing"

func TestDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-01-01", "2024-01-01", false},
		{"2024/01/15", "2024-01-15", false},
		{"2024.1.5", "2024-01-05", false},
		{"01/15/2024", "2024-01-15", false},
		{"1/15/2024", "2024-01-15", false},
		{"02/15/2024", "2024-02-15", false},
		{"01-15-2024", "2024-01-15", false},
		{"01.15.2024", "2024-01-15", false},
		{"15/01/2024", "2024-01-15", false}, // day-first fallback
		{"15-01-2024", "2024-01-15", false},
		{"2024-13-40", "", true},
		{"02/30/2024", "", true}, // day out of range for month
		{"invalid", "", true},
		{"15th Jan 2024", "", true},
	}
	for _, tt := range tests {
		got, err := Date(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Date(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Date(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Month-first layouts take priority over day-first for ambiguous inputs.
func TestDateAmbiguousPrefersMonthFirst(t *testing.T) {
	got, err := Date("03/04/2024")
	if err != nil {
		t.Fatalf("Date: %v", err)
	}
	if got != "2024-03-04" {
		t.Errorf("Date(03/04/2024) = %q, want 2024-03-04", got)
	}
}

// Canonical output must be a fixed point of the validator.
func TestDateIdempotent(t *testing.T) {
	first, err := Date("01/15/2024")
	if err != nil {
		t.Fatalf("Date: %v", err)
	}
	second, err := Date(first)
	if err != nil {
		t.Fatalf("Date on canonical output: %v", err)
	}
	if second != first {
		t.Errorf("Date(Date(x)) = %q, want %q", second, first)
	}
}
