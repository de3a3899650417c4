package cmd

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// LineNoise wraps a liner state with file-backed history.
type LineNoise struct {
	*liner.State
}

func NewLineNoise(completions []string) *LineNoise {
	ln := &LineNoise{liner.NewLiner()}
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completer(completions))
	return ln
}

// completer offers every name starting with the typed prefix, ignoring case.
func completer(names []string) liner.Completer {
	return func(line string) []string {
		prefix := strings.ToUpper(line)
		var out []string
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				out = append(out, name)
			}
		}
		return out
	}
}

// HistoryLoad reads history from filepath. A missing file is not an error.
func (ln *LineNoise) HistoryLoad(filepath string) error {
	content, err := os.ReadFile(filepath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = ln.ReadHistory(bytes.NewReader(content))
	return err
}

// HistorySave replaces filepath with the current history.
func (ln *LineNoise) HistorySave(filepath string) (err error) {
	f, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = ln.WriteHistory(f)
	return err
}
