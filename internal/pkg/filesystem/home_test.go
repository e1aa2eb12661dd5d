package filesystem

import (
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/film")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/var/lib/movies.db", "/var/lib/movies.db"},
		{"~", "/home/film"},
		{"~/movierec/movies.db", filepath.Join("/home/film", "movierec/movies.db")},
		{"./data/../movies.db", "movies.db"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
