package log

import (
	"fmt"
	"log"
	"os"
	"sync"
)

type Logger interface {
	Error(format string, v ...any)
	Warning(format string, v ...any)
	Info(format string, v ...any)
	Close() error
}

// New returns a logger writing to the file at path, or to stdout/stderr if
// path is empty.
func New(path string) (Logger, error) {
	if path != "" {
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return nil, err
		}
		return &StdLog{
			err:  log.New(file, "ERROR ", log.Ldate|log.Ltime),
			wrn:  log.New(file, "WARN ", log.Ldate|log.Ltime),
			inf:  log.New(file, "INFO ", log.Ldate|log.Ltime),
			file: file,
		}, nil
	}
	return &StdLog{
		err: log.New(os.Stderr, "", 0),
		wrn: log.New(os.Stderr, "", 0),
		inf: log.New(os.Stdout, "", 0),
	}, nil
}

type StdLog struct {
	err, wrn, inf *log.Logger
	file          *os.File
}

func (l *StdLog) Error(format string, v ...any) {
	_ = l.err.Output(2, fmt.Sprintf(format, v...))
}

func (l *StdLog) Info(format string, v ...any) {
	_ = l.inf.Output(2, fmt.Sprintf(format, v...))
}

func (l *StdLog) Warning(format string, v ...any) {
	_ = l.wrn.Output(2, fmt.Sprintf(format, v...))
}

func (l *StdLog) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

type EmptyLog struct{}

func NewEmptyLog() Logger { return EmptyLog{} }

func (l EmptyLog) Error(string, ...any)   {}
func (l EmptyLog) Warning(string, ...any) {}
func (l EmptyLog) Info(string, ...any)    {}
func (l EmptyLog) Close() error           { return nil }

// Level of a Record
type Level int

const (
	InfoLevel Level = iota
	WarningLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	}
	return "?"
}

// Record is a single message kept by ListLog.
type Record struct {
	Level   Level
	Message string
}

// ListLog keeps messages in memory. It is safe for concurrent use.
type ListLog struct {
	mu      sync.Mutex
	records []Record
}

func NewListLog() *ListLog { return &ListLog{} }

func (l *ListLog) add(level Level, format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, Record{Level: level, Message: fmt.Sprintf(format, v...)})
}

func (l *ListLog) Error(format string, v ...any)   { l.add(ErrorLevel, format, v...) }
func (l *ListLog) Warning(format string, v ...any) { l.add(WarningLevel, format, v...) }
func (l *ListLog) Info(format string, v ...any)    { l.add(InfoLevel, format, v...) }
func (l *ListLog) Close() error                    { return nil }

// Records returns a copy of the recorded messages.
func (l *ListLog) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Record(nil), l.records...)
}

// Messages returns recorded messages of the given level.
func (l *ListLog) Messages(level Level) []string {
	result := []string{}
	for _, r := range l.Records() {
		if r.Level == level {
			result = append(result, r.Message)
		}
	}
	return result
}
