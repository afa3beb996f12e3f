package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Log levels
const (
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
	DEBUG = "DEBUG"
)

var (
	instance *Logger
	once     sync.Once
)

// Logger struct
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

// getDefaultLogFilePath returns the default log file path
func getDefaultLogFilePath() (string, error) {
	logDir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("create log directory: %w", err)
	}
	return filepath.Join(logDir, "dlist.log"), nil
}

// NewLogger creates the process-wide logger (singleton). Output goes to
// the log file and stdout; debug output reaches stdout only in debug mode.
func NewLogger(logFilePath string, debugMode bool) *Logger {
	once.Do(func() {
		if logFilePath == "" {
			path, err := getDefaultLogFilePath()
			if err != nil {
				log.Fatalf("Failed to resolve log file: %v", err)
			}
			logFilePath = path
		}

		file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}

		multiWriter := io.MultiWriter(file, os.Stdout)
		var debugWriter io.Writer = file
		if debugMode {
			debugWriter = multiWriter
		}
		instance = newLogger(multiWriter, debugWriter)
	})
	return instance
}

// NewLoggerWithWriter creates a logger writing every level to w, without
// touching the singleton. Debug output is discarded unless debugMode is set.
func NewLoggerWithWriter(w io.Writer, debugMode bool) *Logger {
	debugWriter := io.Discard
	if debugMode {
		debugWriter = w
	}
	return newLogger(w, debugWriter)
}

func newLogger(w, debugWriter io.Writer) *Logger {
	return &Logger{
		infoLogger:  log.New(w, "["+INFO+"] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(w, "["+WARN+"] ", log.Ldate|log.Ltime),
		errorLogger: log.New(w, "["+ERROR+"] ", log.Ldate|log.Ltime),
		debugLogger: log.New(debugWriter, "["+DEBUG+"] ", log.Ldate|log.Ltime),
	}
}

// GetLogger retrieves the singleton logger instance
func GetLogger() *Logger {
	if instance == nil {
		log.Fatalf("Logger has not been initialized. Call NewLogger() first.")
	}
	return instance
}

// Logging methods
func (l *Logger) Info(message string) {
	l.infoLogger.Println(message)
}

func (l *Logger) Warn(message string) {
	l.warnLogger.Println(message)
}

func (l *Logger) Error(message string) {
	l.errorLogger.Println(message)
}

func (l *Logger) Debug(message string) {
	l.debugLogger.Println(message)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.infoLogger.Printf(format, args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.debugLogger.Printf(format, args...)
}
