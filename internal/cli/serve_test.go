package cli

import "testing"

func TestDisplayAddr(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":8080", "localhost:8080"},
		{"127.0.0.1:9000", "127.0.0.1:9000"},
		{"example.com:80", "example.com:80"},
	}

	for _, tt := range tests {
		if got := displayAddr(tt.addr); got != tt.want {
			t.Errorf("displayAddr(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestServeRejectsArgs(t *testing.T) {
	captureOutput(t)
	if _, err := runCLI(t, "serve", "extra"); err == nil {
		t.Error("serve with an argument should fail")
	}
}
