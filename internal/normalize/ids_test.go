package normalize

import "testing"

func TestPatientID(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"A123", "A123", false},
		{"B456", "B456", false},
		{" A123 ", "A123", false},
		{"123", "", true},
		{"A", "", true},
		{"A12B", "", true},
	}
	for _, tt := range tests {
		got, err := PatientID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("PatientID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("PatientID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVisitID(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"V123", false},
		{"V1", false},
		{"v123", true},
		{"V", true},
		{"X123", true},
	}
	for _, tt := range tests {
		if _, err := VisitID(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("VisitID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestProviderID(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"PR123", false},
		{"PR4", false},
		{"PR", true},
		{"P123", true},
		{"pr123", true},
	}
	for _, tt := range tests {
		if _, err := ProviderID(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("ProviderID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestLabID(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"L0001", false},
		{"L9999", false},
		{"L123", true},
		{"L12345", true},
		{"LA123", true},
	}
	for _, tt := range tests {
		if _, err := LabID(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("LabID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestInsuranceID(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"ABC123", false},
		{"XYZ789", false},
		{"abc123", false},
		{"123ABC", true},
		{"AB123", true},
		{"ABCD123", true},
	}
	for _, tt := range tests {
		if _, err := InsuranceID(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("InsuranceID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestICDCode(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"A12", false},
		{"A12.3", false},
		{"B45.2", false},
		{"S72.001A", false},
		{"R345", true},
		{"a12", true},
		{"A12.34567", true},
		{"A1", true},
	}
	for _, tt := range tests {
		if _, err := ICDCode(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("ICDCode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
