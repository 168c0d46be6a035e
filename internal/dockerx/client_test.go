package dockerx

import "testing"

func TestMatchesContainerName(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
		match bool
	}{
		{"exact with slash", []string{"/demo"}, "demo", true},
		{"exact without slash", []string{"demo"}, "demo", true},
		{"prefix is not a match", []string{"/demo2"}, "demo", false},
		{"suffix is not a match", []string{"/mydemo"}, "demo", false},
		{"one of several", []string{"/other", "/demo"}, "demo", true},
		{"empty list", nil, "demo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesContainerName(tt.names, tt.want); got != tt.match {
				t.Errorf("matchesContainerName(%v, %q) = %v, want %v", tt.names, tt.want, got, tt.match)
			}
		})
	}
}
