package log

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

type MultiWriter struct {
	writers []io.Writer
}

func NewMultiWriter() *MultiWriter {
	return &MultiWriter{writers: make([]io.Writer, 0)}
}

func (m *MultiWriter) Write(p []byte) (n int, err error) {
	for _, w := range m.writers {
		_, e := w.Write(p)
		if e != nil {
			err = e
		}
	}
	return len(p), err
}

func (m *MultiWriter) Add(writer io.Writer) *MultiWriter {
	m.writers = append(m.writers, writer)
	return m
}

func (m *MultiWriter) Len() int {
	return len(m.writers)
}

func (m *MultiWriter) AddFileAppender(options FileAppenderOpt) *MultiWriter {
	writer := &lumberjack.Logger{
		Filename:   options.Filename,
		MaxSize:    options.MaxSize,    // megabytes
		MaxBackups: options.MaxBackups, // number of backups
		MaxAge:     options.MaxAge,     // days
		Compress:   options.Compress,
	}
	m.writers = append(m.writers, writer)
	return m
}

func buildWriter(appenders []AppenderConfig) (*MultiWriter, error) {
	mw := NewMultiWriter()
	for _, a := range appenders {
		switch a.Type {
		case "console", "stdout":
			mw.Add(os.Stdout)
		case "stderr", "":
			mw.Add(os.Stderr)
		case "file":
			if a.File.Filename == "" {
				return nil, fmt.Errorf("file appender requires 'filename'")
			}
			mw.AddFileAppender(a.File)
		default:
			return nil, fmt.Errorf("unknown appender type: %s", a.Type)
		}
	}
	if mw.Len() == 0 {
		mw.Add(os.Stderr)
	}
	return mw, nil
}
