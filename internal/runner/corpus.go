package runner

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// maxLineSize caps a single corpus line. Real user agents stay far below it.
const maxLineSize = 64 * 1024

// ReadCorpus reads one user agent per line. Blank lines and lines starting
// with '#' are skipped and duplicates are dropped, keeping first-seen order.
func ReadCorpus(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	seen := make(map[string]struct{})
	uas := make([]string, 0)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		uas = append(uas, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrReadCorpus, err)
	}
	return uas, nil
}
