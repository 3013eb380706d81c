// ABOUTME: Shared log output selection for the logger backends
// ABOUTME: Writes to stdout, or to a size-rotated file when a path is configured

package logger

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Output returns stdout when path is empty, otherwise a rotating file writer
func Output(path string) io.Writer {
	if path == "" {
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}
