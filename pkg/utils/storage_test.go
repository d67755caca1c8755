package utils

import "testing"

func TestProcessName(t *testing.T) {
	tests := []struct {
		name    string
		cmdline []byte
		want    string
	}{
		{"single", []byte("com.example.joseon\x00"), "com.example.joseon"},
		{"with args", []byte("com.example.joseon\x00--flag\x00"), "com.example.joseon"},
		{"trailing newline", []byte("app\n"), "app"},
		{"empty", []byte("\x00"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := processName(tt.cmdline); got != tt.want {
				t.Errorf("processName(%q) = %q, want %q", tt.cmdline, got, tt.want)
			}
		})
	}
}
