package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
)

const (
	// LogsDir is the directory the daily files are written to.
	LogsDir = "logs"
	// FilePrefix and FileExt frame the day stamp: log-20260101.txt.
	FilePrefix = "log-"
	FileExt    = ".txt"
	dayPattern = "%Y%m%d"

	// RetainedFileCount is the number of most recent daily files kept.
	RetainedFileCount = 7
)

type clockFunc func() time.Time

func (f clockFunc) Now() time.Time { return f() }

// dailyFile is the file sink: one file per calendar day, rotated and pruned
// by rotatelogs. Writes after Close fail with os.ErrClosed instead of
// reopening a file.
type dailyFile struct {
	mu     sync.RWMutex
	logs   *rotatelogs.RotateLogs
	closed bool
}

// newDailyFile opens today's file right away so that an unusable directory
// is reported at startup. now nil means the local wall clock.
func newDailyFile(dir string, retain int, now func() time.Time) (*dailyFile, error) {
	clock := rotatelogs.Clock(rotatelogs.Local)
	if now != nil {
		clock = clockFunc(now)
	}

	logs, err := rotatelogs.New(
		filepath.Join(dir, FilePrefix+dayPattern+FileExt),
		rotatelogs.WithClock(clock),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithRotationCount(uint(retain)),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating file sink: %w", err)
	}

	if err = logs.Rotate(); err != nil {
		_ = logs.Close()
		return nil, fmt.Errorf("error opening log file in %s: %w", dir, err)
	}

	return &dailyFile{logs: logs}, nil
}

func (d *dailyFile) Write(p []byte) (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return 0, os.ErrClosed
	}
	return d.logs.Write(p)
}

func (d *dailyFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	return d.logs.Close()
}
