package normalize

import "testing"

func TestAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"150.00", "150.00", false},
		{"150", "150.00", false},
		{"150.5", "150.50", false},
		{"99.999", "100.00", false},
		{"-20", "-20.00", false},
		{"USD", "", true},
		{"12.34.56", "", true},
	}
	for _, tt := range tests {
		got, err := Amount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Amount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Amount(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"USD", false},
		{"EUR", false},
		{" CAD ", false},
		{"usd", true}, // exact case only
		{"GBP", true},
	}
	for _, tt := range tests {
		if _, err := Currency(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("Currency(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
