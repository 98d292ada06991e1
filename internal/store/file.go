package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"go.uber.org/zap"
)

const (
	journalName = "commit.journal"
	stagedExt   = ".tmp"
)

type journal struct {
	Collections []Collection `json:"collections"`
}

// FileBackend keeps one <collection>.json file per collection in dir.
//
// A multi-collection Save stages every document next to its live file, records the staged set in a
// journal, then swaps the staged files in. Opening the backend discards an unjournaled commit. A
// journaled one is rolled forward before any Load or Save; while that keeps failing the backend
// returns the error instead of serving half of a commit.
type FileBackend struct {
	dir    string
	mu     sync.Mutex
	logger logger.ZapLogger
}

func NewFileBackend(dir string, log logger.ZapLogger) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	b := &FileBackend{dir: dir, logger: log}

	b.mu.Lock()
	defer b.mu.Unlock()
	pending, err := b.replayJournal()
	if err != nil {
		return nil, err
	}
	if !pending {
		b.discardStaged()
	}
	return b, nil
}

func (b *FileBackend) path(c Collection) string {
	return filepath.Join(b.dir, string(c)+".json")
}

func (b *FileBackend) Load(_ context.Context, c Collection) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.replayJournal(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(b.path(c))
	if errors.Is(err, os.ErrNotExist) {
		return emptyDocument, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return emptyDocument, nil
	}
	return data, nil
}

func (b *FileBackend) Save(ctx context.Context, docs map[Collection][]byte) error {
	if len(docs) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// an unfinished commit must land before a new journal can be written
	if _, err := b.replayJournal(); err != nil {
		return err
	}

	names, err := b.stage(docs)
	if err != nil {
		b.discardStaged()
		return err
	}
	if err := b.writeJournal(names); err != nil {
		b.discardStaged()
		return err
	}
	if err := b.apply(names); err != nil {
		// the journal stays; the next Load or Save rolls the commit forward
		return err
	}
	return b.removeJournal()
}

func (b *FileBackend) Close() error {
	return nil
}

func (b *FileBackend) stage(docs map[Collection][]byte) ([]Collection, error) {
	names := make([]Collection, 0, len(docs))
	for c := range docs {
		names = append(names, c)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	for _, c := range names {
		if err := writeFileSync(b.path(c)+stagedExt, docs[c]); err != nil {
			return nil, fmt.Errorf("failed to stage %s: %w", c, err)
		}
	}
	return names, nil
}

func (b *FileBackend) writeJournal(names []Collection) error {
	path := filepath.Join(b.dir, journalName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite pending journal %s", path)
	}

	data, err := json.Marshal(journal{Collections: names})
	if err != nil {
		return fmt.Errorf("failed to encode journal: %w", err)
	}
	if err := writeFileSync(path+stagedExt, data); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}
	if err := os.Rename(path+stagedExt, path); err != nil {
		return fmt.Errorf("failed to commit journal: %w", err)
	}
	return nil
}

func (b *FileBackend) apply(names []Collection) error {
	for _, c := range names {
		staged := b.path(c) + stagedExt
		if _, err := os.Stat(staged); errors.Is(err, os.ErrNotExist) {
			// already swapped in by an earlier attempt
			continue
		}
		if err := os.Rename(staged, b.path(c)); err != nil {
			return fmt.Errorf("failed to apply %s: %w", c, err)
		}
	}
	return nil
}

func (b *FileBackend) removeJournal() error {
	err := os.Remove(filepath.Join(b.dir, journalName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove journal: %w", err)
	}
	return nil
}

func (b *FileBackend) discardStaged() {
	pattern := filepath.Join(b.dir, "*"+stagedExt)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		b.logger.Warn("failed to list staged files", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !errors.Is(err, os.ErrNotExist) {
			b.logger.Warn("failed to remove staged file", zap.String("path", m), zap.Error(err))
		}
	}
}

// replayJournal rolls a journaled commit forward. It reports whether a journal was found; the caller
// must hold mu.
func (b *FileBackend) replayJournal() (bool, error) {
	data, err := os.ReadFile(filepath.Join(b.dir, journalName))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return true, fmt.Errorf("failed to read journal: %w", err)
	}

	var j journal
	if err := json.Unmarshal(data, &j); err != nil {
		return true, fmt.Errorf("failed to decode journal: %w", err)
	}
	for _, c := range j.Collections {
		if strings.ContainsAny(string(c), `/\`) {
			return true, fmt.Errorf("invalid collection %q in journal", c)
		}
	}
	if err := b.apply(j.Collections); err != nil {
		return true, fmt.Errorf("pending commit could not be completed: %w", err)
	}
	if err := b.removeJournal(); err != nil {
		return true, err
	}
	b.logger.Info("pending commit rolled forward", zap.Any("collections", j.Collections))
	b.discardStaged()
	return true, nil
}

func writeFileSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
