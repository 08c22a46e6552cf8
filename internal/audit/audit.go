package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"forum/pkg/logger"

	"go.uber.org/zap"
)

// Entry records one archive operation: who moved what into the archive
// tables, and when.
type Entry struct {
	Action    string    `json:"action"` // "post.archived" or "comment.archived"
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	TargetID  uint      `json:"target_id"`
	PostID    uint      `json:"post_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Logger is an append-only JSONL moderation log. Each entry is synced to
// disk before Write returns.
type Logger struct {
	filePath string
	file     *os.File
	mu       sync.Mutex
}

func NewLogger(filePath string) (*Logger, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &Logger{
		filePath: filePath,
		file:     file,
	}, nil
}

// Write appends one entry and fsyncs.
func (l *Logger) Write(entry Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	if _, err := l.file.WriteString(string(data) + "\n"); err != nil {
		logger.Log.Error("audit: failed to write entry",
			zap.String("action", entry.Action),
			zap.Error(err),
		)
		return err
	}

	if err := l.file.Sync(); err != nil {
		logger.Log.Error("audit: failed to sync to disk",
			zap.String("action", entry.Action),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// ReadAll replays the log from the start. The file position for appends
// is unaffected.
func (l *Logger) ReadAll() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.Open(l.filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			// Skip torn or corrupt lines rather than failing the replay.
			continue
		}
		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}
