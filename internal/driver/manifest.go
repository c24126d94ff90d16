package driver

import (
	"bufio"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseManifest reads a manifest file: one path per line, blank lines and
// lines starting with "#" ignored.
func ParseManifest(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("driver: opening manifest %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("driver: reading manifest %s: %w", path, err)
	}
	return out, nil
}

// JobID computes MD5(abs(manifestPath) || action), hex-encoded — the
// identity a build run's ledger entries are keyed under, so that rerunning
// the same manifest for the same action resumes rather than restarts.
func JobID(manifestPath, action string) (string, error) {
	abs, err := filepath.Abs(manifestPath)
	if err != nil {
		return "", fmt.Errorf("driver: resolving manifest path: %w", err)
	}
	sum := md5.Sum([]byte(abs + action))
	return hex.EncodeToString(sum[:]), nil
}
