// Package persist supplies the node's ambient logging facility. It is a
// concrete implementation of external.Logger, grounded on the teacher's
// persist.Logger: a thin, concurrency-safe wrapper over the standard
// library logger that frames a session with STARTUP/SHUTDOWN markers.
package persist

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Logger wraps a standard library logger with leveled Infof/Warnf/Errorf
// methods and a startup/shutdown framing, matching the teacher's
// persist.Logger contract.
type Logger struct {
	mu  sync.Mutex
	log *log.Logger
}

// NewLogger creates a Logger that writes timestamped, leveled lines to w.
// It immediately writes a STARTUP line, mirroring the teacher's file
// logger so that log files of successive runs are easy to delimit.
func NewLogger(w io.Writer) *Logger {
	l := &Logger{
		log: log.New(w, "", log.Ldate|log.Ltime),
	}
	l.log.Println("STARTUP: logging initialized")
	return l
}

func (l *Logger) logf(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Printf("%s: %s", level, fmt.Sprintf(format, args...))
}

// Infof logs an informational message.
func (l *Logger) Infof(format string, args ...interface{}) { l.logf("INFO", format, args...) }

// Warnf logs a warning message. The core uses this for the "observable
// failure-to-apply" no-op paths described in the wallet state's error
// handling design.
func (l *Logger) Warnf(format string, args ...interface{}) { l.logf("WARN", format, args...) }

// Errorf logs an error message.
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf("ERROR", format, args...) }

// Close writes a SHUTDOWN line. It does not close the underlying writer,
// which the caller owns.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Println("SHUTDOWN: logging stopped")
}
