// Package identity derives a stable anonymous student identity from a
// per-device token. The token is a UUID minted on first launch and kept in
// the data dir; it is never rotated and never leaves the machine except as
// the key of the student row.
package identity

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const tokenFile = "device_id"

// DeviceID returns the device token, creating and persisting it on first
// call.
func DeviceID(dataDir string) (string, error) {
	path := filepath.Join(dataDir, tokenFile)

	raw, err := os.ReadFile(path)
	if err == nil {
		tok := strings.TrimSpace(string(raw))
		if _, perr := uuid.Parse(tok); perr == nil {
			return tok, nil
		}
		// Unparseable token file: mint a fresh one below.
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read device token: %w", err)
	}

	tok := uuid.New().String()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(tok+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("persist device token: %w", err)
	}
	return tok, nil
}
