package orgfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gerunddev/orgwriter/internal/logger"
)

// AtomicWriteLimit is the largest append assumed to land in one piece when
// other writers share the file.
const AtomicWriteLimit = 4096

// Appender appends rendered org text to files.
type Appender struct {
	log *logger.Logger
}

// NewAppender creates an appender that reports through log
func NewAppender(log *logger.Logger) *Appender {
	if log == nil {
		log = logger.Discard()
	}
	return &Appender{log: log}
}

// Prepare returns what Append would write: text terminated by a newline.
func Prepare(text string) string {
	if strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}

// Appended returns existing with text appended the way Append writes it.
// An unterminated last line is closed first so text starts on a line of
// its own.
func Appended(existing, text string) string {
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		existing += "\n"
	}
	return existing + Prepare(text)
}

// Append writes text to the end of path, creating the file and its
// directory if needed. Writes larger than AtomicWriteLimit still go through
// but are logged as possibly non-atomic.
func (a *Appender) Append(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	data := []byte(Prepare(text))

	midLine, err := endsMidLine(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if midLine {
		data = append([]byte{'\n'}, data...)
	}

	if len(data) > AtomicWriteLimit {
		a.log.LargeWrite(path, len(data), AtomicWriteLimit)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	a.log.EntryAppended(path, len(data))
	return nil
}

// endsMidLine reports whether f is non-empty and its last byte is not a
// newline.
func endsMidLine(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}

// ReadExisting returns the current contents of path, or "" if it does not
// exist yet.
func ReadExisting(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}
