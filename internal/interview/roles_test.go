package interview

import "testing"

func TestIsSupportedRole(t *testing.T) {
	for _, role := range Roles {
		if !IsSupportedRole(role) {
			t.Errorf("IsSupportedRole(%q) = false", role)
		}
	}
	for _, role := range []string{"", "backend developer", "Astronaut"} {
		if IsSupportedRole(role) {
			t.Errorf("IsSupportedRole(%q) = true", role)
		}
	}
}

func TestNormalizeCount(t *testing.T) {
	tests := []struct {
		in     int
		want   int
		wantOK bool
	}{
		{0, DefaultQuestions, true},
		{3, 3, true},
		{10, 10, true},
		{5, 5, true},
		{2, 0, false},
		{11, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, ok := NormalizeCount(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NormalizeCount(%d) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
