// pkg/snapshot/snapshot.go
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sunbrite/shopmigrate/pkg/model"
)

const (
	snapshotPrefix = "accounts-"
	snapshotSuffix = ".json"
	stampLayout    = "20060102-150405"
)

// Store reads and writes account snapshot files. Snapshots live outside the
// database so they survive the destination being dropped and recreated
// between backup and restore.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates a snapshot store rooted at dir
func NewStore(dir string) *Store {
	return &Store{
		dir:    dir,
		logger: zap.L().Named("snapshot"),
	}
}

// Write serializes accounts to a new timestamped snapshot file and returns
// its path.
func (s *Store) Write(accounts []model.Account) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	name := snapshotPrefix + time.Now().Format(stampLayout) + snapshotSuffix
	path := filepath.Join(s.dir, name)

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize accounts: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}

	s.logger.Info("Wrote account snapshot",
		zap.String("path", path),
		zap.Int("accounts", len(accounts)))

	return path, nil
}

// Latest returns the path of the most recent snapshot file. Timestamped
// names sort lexically, so the newest is the largest name.
func (s *Store) Latest() (string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", fmt.Errorf("failed to read snapshot directory %s: %w", s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, snapshotPrefix) && strings.HasSuffix(name, snapshotSuffix) {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return "", fmt.Errorf("no account snapshots found in %s", s.dir)
	}

	sort.Strings(names)
	return filepath.Join(s.dir, names[len(names)-1]), nil
}

// HasSnapshots reports whether at least one snapshot file exists
func (s *Store) HasSnapshots() bool {
	_, err := s.Latest()
	return err == nil
}

// Read loads accounts from a snapshot file
func (s *Store) Read(path string) ([]model.Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var accounts []model.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}

	return accounts, nil
}
