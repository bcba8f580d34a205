package ioformat

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
)

// WriteAnswers writes one answer per line, in order, to path. The file
// is written to a temporary path and renamed into place so a crash or a
// later fatal error never leaves a partially written output file.
func WriteAnswers(path string, answers []uint64) error {
	var buf bytes.Buffer

	buf.Grow(len(answers) * 8)

	for _, a := range answers {
		fmt.Fprintf(&buf, "%d\n", a)
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("ioformat: write %s: %w", path, err)
	}

	return nil
}

// FormatReport renders the "RESULT ..." line emitted to stdout after the
// answer file is written. timeBuildMS and timeQueryMS are truncated
// wall-clock milliseconds; spaceBits is the auxiliary index size
// excluding the BitStore itself.
func FormatReport(name string, timeBuildMS, timeQueryMS int64, spaceBits int) string {
	return fmt.Sprintf("RESULT name=%s time_build=%d time_query=%d space=%d", name, timeBuildMS, timeQueryMS, spaceBits)
}
