package client

import "testing"

func TestFileURL(t *testing.T) {
	base := "https://api.example.com"

	tests := []struct {
		name     string
		filePath string
		want     string
	}{
		{"absolute https", "https://cdn.example.com/photos/1.jpg", "https://cdn.example.com/photos/1.jpg"},
		{"absolute http", "http://cdn.example.com/photos/1.jpg", "http://cdn.example.com/photos/1.jpg"},
		{"rooted relative", "/uploads/photos/1.jpg", "https://api.example.com/uploads/photos/1.jpg"},
		{"bare relative", "uploads/photos/1.jpg", "https://api.example.com/uploads/photos/1.jpg"},
		{"empty", "", "https://api.example.com/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileURL(base, tt.filePath); got != tt.want {
				t.Errorf("FileURL(%q) = %q, want %q", tt.filePath, got, tt.want)
			}
		})
	}
}

func TestFileURLTrailingSlashBase(t *testing.T) {
	got := FileURL("https://api.example.com/", "/uploads/1.jpg")
	want := "https://api.example.com/uploads/1.jpg"

	if got != want {
		t.Errorf("FileURL with trailing slash base = %q, want %q", got, want)
	}
}
