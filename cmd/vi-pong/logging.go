package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	logDir      = "logs"
	logFileName = "vi-pong.log"
	maxLogSize  = int64(10 * 1024 * 1024)
)

// setupLogging routes the standard logger to a file when debug is set and discards it otherwise
// An oversized log is renamed with a timestamp before a fresh one is opened
// Returns the open file for the caller to close, nil when logging is off or the file is unavailable
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		fmt.Fprintf(os.Stderr, "vi-pong: log dir: %v\n", err)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(logFileName)
		rotated := fmt.Sprintf("%s-%s%s", logFileName[:len(logFileName)-len(ext)], time.Now().Format("20060102-150405"), ext)
		if err := os.Rename(logPath, filepath.Join(logDir, rotated)); err != nil {
			fmt.Fprintf(os.Stderr, "vi-pong: log rotate: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		fmt.Fprintf(os.Stderr, "vi-pong: log file: %v\n", err)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return f
}
