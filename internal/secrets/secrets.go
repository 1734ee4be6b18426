// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads access credentials for gated course pages from a
// directory of plain-text files. Each file in the directory represents one
// credential: the filename is the key name and the file contents (trimmed)
// are the value.
//
// Supported key files: course-cookie (sent as a Cookie header),
// bearer-token (sent as an Authorization bearer header).
package secrets

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	// KeyCookie is the key file holding a session cookie string.
	KeyCookie = "course-cookie"

	// KeyBearerToken is the key file holding a bearer token.
	KeyBearerToken = "bearer-token"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty
// map. Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Headers converts loaded credentials into the HTTP headers to send with
// every request. Unrecognized keys are ignored.
func Headers(secrets map[string]string) http.Header {
	h := http.Header{}
	if v, ok := secrets[KeyCookie]; ok {
		h.Set("Cookie", v)
	}
	if v, ok := secrets[KeyBearerToken]; ok {
		h.Set("Authorization", "Bearer "+v)
	}
	return h
}
