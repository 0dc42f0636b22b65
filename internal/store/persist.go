package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Load reads the task file at path. Any failure (missing file, I/O error,
// malformed JSON) yields an empty list; the reason is only logged.
// Loaded tasks get fresh IDs and clamped priorities.
func Load(path string, logger *log.Logger) []Task {
	if logger == nil {
		logger = discardLogger()
	}
	if path == "" {
		logger.Warn("load skipped", "err", ErrNoPath)
		return []Task{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no task file yet", "path", path)
		} else {
			logger.Warn("failed to read task file", "path", path, "err", err)
		}
		return []Task{}
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		logger.Warn("failed to parse task file", "path", path, "err", err)
		return []Task{}
	}

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		t.ID = uuid.NewString()
		t.Priority = ClampPriority(t.Priority)
		out = append(out, t)
	}
	logger.Debug("tasks loaded", "path", path, "count", len(out))
	return out
}

// Persist writes tasks to path as indented JSON, replacing the file
// atomically. The parent directory is created if needed.
func Persist(path string, tasks []Task) error {
	if path == "" {
		return ErrNoPath
	}
	if tasks == nil {
		tasks = []Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize tasks: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace task file: %w", err)
	}
	return nil
}
