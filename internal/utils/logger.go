package utils

import (
	"io"
	"log"
	"os"
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
	mu       sync.Mutex
)

// Logger struct
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

// NewLogger creates the logger instance (singleton), replacing any earlier one.
// An empty logFilePath logs to the console only.
func NewLogger(logFilePath string, debugMode bool) *Logger {
	logger := newLogger(logFilePath, debugMode)
	mu.Lock()
	instance = logger
	mu.Unlock()
	return logger
}

func newLogger(logFilePath string, debugMode bool) *Logger {
	var out io.Writer = os.Stdout
	debugWriter := io.Discard

	if logFilePath != "" {
		file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("Failed to open log file, logging to console only: %v", err)
		} else {
			// Log to both the file and console
			out = io.MultiWriter(file, os.Stdout)
			debugWriter = file
		}
	}
	if debugMode {
		debugWriter = out
	}

	return &Logger{
		infoLogger:  log.New(out, "[INFO] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(out, "[WARN] ", log.Ldate|log.Ltime),
		errorLogger: log.New(out, "[ERROR] ", log.Ldate|log.Ltime),
		debugLogger: log.New(debugWriter, "[DEBUG] ", log.Ldate|log.Ltime),
	}
}

// GetLogger retrieves the singleton logger instance, creating a console
// logger if NewLogger has not been called yet.
func GetLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = newLogger("", false)
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
