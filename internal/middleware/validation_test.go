package middleware

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "alice", "alice", false},
		{"valid with separators", "alice.b-c_d", "alice.b-c_d", false},
		{"trims whitespace", "  alice  ", "alice", false},
		{"empty", "", "", true},
		{"too short", "ab", "", true},
		{"exactly 32", strings.Repeat("a", 32), strings.Repeat("a", 32), false},
		{"too long 33", strings.Repeat("a", 33), "", true},
		{"invalid chars", "alice bob", "", true},
		{"sql injection", "a'; DROP--", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateUsername(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "alice@x.com", "alice@x.com", false},
		{"lowercased", "Alice@X.COM", "alice@x.com", false},
		{"trims whitespace", " alice@x.com ", "alice@x.com", false},
		{"empty", "", "", true},
		{"no at sign", "alice.x.com", "", true},
		{"no domain", "alice@", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateEmail(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateChannelName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "Alice Vlog", "Alice Vlog", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"exactly 100", strings.Repeat("x", 100), strings.Repeat("x", 100), false},
		{"too long 101", strings.Repeat("x", 101), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateChannelName(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateCommentText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "nice video", "nice video", false},
		{"trims", "  nice video  ", "nice video", false},
		{"empty", "", "", true},
		{"whitespace only", " \t\n ", "", true},
		{"too long", strings.Repeat("y", 2001), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateCommentText(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "550e8400-e29b-41d4-a716-446655440000", "550e8400-e29b-41d4-a716-446655440000", false},
		{"uppercase normalized", "550E8400-E29B-41D4-A716-446655440000", "550e8400-e29b-41d4-a716-446655440000", false},
		{"empty", "", "", true},
		{"not a uuid", "abc123", "", true},
		{"sql injection", "'; DROP TABLE--", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateID("channelId", tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateMediaURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid https", "https://cdn.example/v1.mp4", "https://cdn.example/v1.mp4", false},
		{"valid http", "http://cdn.example/v1.mp4", "http://cdn.example/v1.mp4", false},
		{"trims whitespace", " https://cdn.example/v1.mp4 ", "https://cdn.example/v1.mp4", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"no scheme", "cdn.example/v1.mp4", "", true},
		{"no host", "https://", "", true},
		{"relative path", "/videos/v1.mp4", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateMediaURL(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
