package app

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

const logFilePermissions = 0644

// OpenLogger returns a logger appending to the file at path. The caller
// closes the returned io.Closer on exit.
func OpenLogger(path string, level log.Level) (*log.Logger, io.Closer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	return NewLogger(file, level), file, nil
}

func NewLogger(out io.Writer, level log.Level) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return logger
}
