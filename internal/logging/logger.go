// Package logging provides leveled, optionally colored console logging with
// an optional structured (JSON lines) log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/zeropad/internal/config"
	"github.com/backmassage/zeropad/internal/term"
)

// Level colors. Rendering honours color.NoColor, set by term.Configure.
var (
	infoColor  = color.New(color.FgBlue, color.Bold)
	errorColor = color.New(color.FgRed, color.Bold)
	debugColor = color.New(color.FgCyan, color.Bold)
)

// Logger provides leveled console logging with an optional file sink.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer

	file  *lockedFile
	zlog  *zap.SugaredLogger
	runID string
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{
		out:    os.Stdout,
		errOut: os.Stderr,
		runID:  uuid.NewString(),
	}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		lf, err := openLockedFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		l.file = lf
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			lf,
			zapcore.DebugLevel,
		)
		l.zlog = zap.New(core).With(zap.String("run_id", l.runID)).Sugar()
	}
	return l, nil
}

// SetOutput redirects console output. Errors go to errOut.
func (l *Logger) SetOutput(out, errOut io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = out
	l.errOut = errOut
}

// RunID returns the identifier attached to every file log entry of this run.
func (l *Logger) RunID() string { return l.runID }

// Close flushes and closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	_ = l.zlog.Sync()
	err := l.file.Close()
	l.file = nil
	l.zlog = nil
	return err
}

func (l *Logger) line(level string, c *color.Color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	_, _ = io.WriteString(out, ts+" "+c.Sprint("["+level+"]")+" "+text+"\n")

	if l.zlog == nil {
		return
	}
	switch level {
	case "ERROR":
		l.zlog.Errorw(text)
	case "DEBUG":
		l.zlog.Debugw(text)
	default:
		l.zlog.Infow(text, "tag", strings.ToLower(level))
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", infoColor, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red) to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", errorColor, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", debugColor, fmt.Sprintf(format, args...))
}

// Audit records a structured event in the log file only. The console is left
// alone so in-place progress lines are not disturbed. No-op without a log file.
func (l *Logger) Audit(msg string, keysAndValues ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.zlog == nil {
		return
	}
	l.zlog.Infow(msg, keysAndValues...)
}
