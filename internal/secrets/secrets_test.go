// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "course-cookie", "  session=abc123  \n")
				writeFile(t, dir, "bearer-token", "tok_xyz789")
				return dir
			},
			want: map[string]string{
				"course-cookie": "session=abc123",
				"bearer-token":  "tok_xyz789",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files and dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "course-cookie", "session=real")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden", "secret")
				return dir
			},
			want: map[string]string{
				"course-cookie": "session=real",
			},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "bearer-token", "tok_123")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				"bearer-token": "tok_123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeaders(t *testing.T) {
	h := Headers(map[string]string{
		KeyCookie:      "session=abc",
		KeyBearerToken: "tok_123",
		"unrelated":    "ignored",
	})

	assert.Equal(t, "session=abc", h.Get("Cookie"))
	assert.Equal(t, "Bearer tok_123", h.Get("Authorization"))
	assert.Len(t, h, 2)
}

func TestHeadersEmpty(t *testing.T) {
	assert.Empty(t, Headers(map[string]string{}))
}
