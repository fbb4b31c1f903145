package csvio

import (
	"os"
	"strconv"
)

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// openForAppend opens path for append, creating it if absent, and
// reports whether the file was newly created (so callers know whether
// to write a CSV header).
func openForAppend(path string) (*os.File, bool, error) {
	_, err := os.Stat(path)
	isNew := os.IsNotExist(err)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, false, err
	}
	return f, isNew, nil
}
