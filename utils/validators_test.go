package utils

import "testing"

func TestValidateTag(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"webdev", true},
		{"go-lang", true},
		{"k8s", true},
		{"", false},
		{"WebDev", false},
		{"has space", false},
		{"emoji🔥", false},
		{"trailing!", false},
		// Unicode lowercase letters and non-ASCII digits are outside the grammar
		{"café", false},
		{"page٣", false},
		{"straße", false},
	}

	for _, tt := range tests {
		if got := ValidateTag(tt.tag); got != tt.want {
			t.Errorf("ValidateTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"ftp://files.example.com", true},
		{"example.com", false},
		{"/relative/path", false},
		{"", false},
		{"https://", false},
	}

	for _, tt := range tests {
		if got := ValidateURL(tt.url); got != tt.want {
			t.Errorf("ValidateURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
