package audit

import (
	"bufio"
	"os"
)

// maxLineBytes bounds the scanner buffer; lesson files embed long code
// lines and data URLs that exceed bufio's default 64K token size.
const maxLineBytes = 1024 * 1024

// Classification is the per-file result of the tri-state rule.
type Classification struct {
	Status Status
	Lines  int
	Bytes  int64
	Err    error
}

// Classify applies the completeness rule to one file:
// absent -> missing; empty or shorter than threshold lines -> stub;
// otherwise complete. A file that exists but cannot be read classifies
// as stub with the error recorded, so one bad file does not abort a run.
func Classify(path string, threshold int) Classification {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Classification{Status: StatusMissing}
		}
		return Classification{Status: StatusMissing, Err: err}
	}

	size := info.Size()
	if size == 0 {
		return Classification{Status: StatusStub, Bytes: 0}
	}

	lines, err := countLines(path)
	if err != nil {
		return Classification{Status: StatusStub, Bytes: size, Err: err}
	}

	status := StatusComplete
	if lines < threshold {
		status = StatusStub
	}
	return Classification{Status: status, Lines: lines, Bytes: size}
}

// countLines counts lines in a file. A trailing line without a newline
// counts as a line.
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lines := 0
	for scanner.Scan() {
		lines++
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return lines, nil
}
