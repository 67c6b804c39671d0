package lib

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/ziflex/lecho/v3"
)

func Logger(logFilePath string) *lecho.Logger {
	return lecho.New(
		logDest(logFilePath),
		lecho.WithLevel(log.INFO),
		lecho.WithTimestamp(),
	)
}

func logDest(logFilePath string) io.Writer {
	// default to STDOUT, tee into a file when one is configured
	if logFilePath == "" {
		return os.Stdout
	}
	path := logFilePath
	if filepath.Ext(path) == "" {
		path = logFilePath + time.Now().Format("-2006-01-02") + ".log"
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
	if err != nil {
		panic(err)
	}
	return io.MultiWriter(os.Stdout, file)
}
