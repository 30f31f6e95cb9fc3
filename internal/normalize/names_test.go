package normalize

import "testing"

func TestPersonName(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"John", false},
		{"Mary", false},
		{"José", false},
		{"Müller", false},
		{"test", true},      // lowercase first letter
		{"invalid", true},   // placeholder token
		{"DOB", true},       // placeholder token
		{"FirstName", true}, // placeholder token
		{"J", true},         // single letter
		{"O'Brien", true},   // apostrophe not allowed
		{"Anne-Marie", true},
		{"Smith2", true},
	}
	for _, tt := range tests {
		if _, err := PersonName(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("PersonName(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
