// Package logger holds the process-wide zerolog logger. Diagnostic events go
// to a rotating JSON file under the state directory; the console only sees
// them when --debug is set so normal output stays clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the name of the log file inside the logs directory.
const LogFileName = "tsinit.log"

var (
	// Log is the global logger instance
	Log zerolog.Logger = zerolog.Nop()

	// fileWriter is the file output for logging (with rotation)
	fileWriter *lumberjack.Logger

	// logContext holds run/project context for log entries (optional, may be empty)
	logContext   logContextData
	logContextMu sync.RWMutex
)

type logContextData struct {
	RunID   string
	Project string
}

// SetContext sets the run ID and project name attached to all subsequent
// log entries. Pass empty strings to clear. Thread-safe.
func SetContext(runID, project string) {
	logContextMu.Lock()
	defer logContextMu.Unlock()
	logContext = logContextData{RunID: runID, Project: project}
}

// SetProject updates only the project name, keeping the run ID.
func SetProject(project string) {
	logContextMu.Lock()
	defer logContextMu.Unlock()
	logContext.Project = project
}

// ClearContext clears the run/project context.
func ClearContext() {
	SetContext("", "")
}

func getContext() logContextData {
	logContextMu.RLock()
	defer logContextMu.RUnlock()
	return logContext
}

func addContext(event *zerolog.Event) *zerolog.Event {
	ctx := getContext()
	if ctx.RunID != "" {
		event = event.Str("run_id", ctx.RunID)
	}
	if ctx.Project != "" {
		event = event.Str("project", ctx.Project)
	}
	return event
}

// LoggingConfig holds configuration for file-based logging.
// It mirrors config.LoggingSettings without importing it.
type LoggingConfig struct {
	FileEnabled *bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// Init resets the global logger to a nop logger. Used before settings are
// loaded and in tests.
func Init() {
	_ = CloseFileWriter()
	Log = zerolog.Nop()
}

// InitWithFile initializes the global logger.
//
// When debug is true, events at debug level and above are also written to
// stderr through a console writer. File logging is skipped if logsDir is
// empty or cfg disables it; with neither sink the logger is a nop.
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig) error {
	return initWithWriters(debug, os.Stderr, logsDir, cfg)
}

func initWithWriters(debug bool, console io.Writer, logsDir string, cfg *LoggingConfig) error {
	_ = CloseFileWriter()

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var writers []io.Writer
	if debug {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
		})
	}

	if logsDir != "" && cfg != nil && cfg.IsFileEnabled() {
		if err := os.MkdirAll(logsDir, 0o755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}

		fileWriter = &lumberjack.Logger{
			Filename:   filepath.Join(logsDir, LogFileName),
			MaxSize:    cfg.GetMaxSizeMB(),
			MaxAge:     cfg.GetMaxAgeDays(),
			MaxBackups: cfg.GetMaxBackups(),
			LocalTime:  true,
		}
		writers = append(writers, fileWriter)
	}

	if len(writers) == 0 {
		Log = zerolog.Nop()
		return nil
	}

	Log = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

// CloseFileWriter closes the file writer if it exists.
// Call this on program shutdown for clean log file closure.
func CloseFileWriter() error {
	if fileWriter != nil {
		err := fileWriter.Close()
		fileWriter = nil
		return err
	}
	return nil
}

// GetLogFilePath returns the path to the current log file, or empty string
// if file logging is disabled.
func GetLogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return addContext(Log.Debug())
}

// Info logs an info message.
func Info() *zerolog.Event {
	return addContext(Log.Info())
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return addContext(Log.Warn())
}

// Error logs an error message.
func Error() *zerolog.Event {
	return addContext(Log.Error())
}

// Global adapts the package-level functions to iostreams.Logger so the
// command layer can log with run context without importing this package.
type Global struct{}

func (Global) Debug() *zerolog.Event { return Debug() }
func (Global) Info() *zerolog.Event  { return Info() }
func (Global) Warn() *zerolog.Event  { return Warn() }
func (Global) Error() *zerolog.Event { return Error() }
