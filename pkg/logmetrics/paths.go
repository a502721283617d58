package logmetrics

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
)

// validatedPath matches from the start of a line; trailing text is ignored.
var validatedPath = regexp.MustCompile(`^.*(p|P)ath.*is now validated`)

// CountValidatedPaths returns the number of paths used by the endpoint that
// wrote the log at path: one per "path ... is now validated" line, plus the
// default path. Server logs are preferred since the server validates last.
func CountValidatedPaths(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := CountValidatedPathsReader(f)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return n, nil
}

// CountValidatedPathsReader is CountValidatedPaths over an already open log.
func CountValidatedPathsReader(r io.Reader) (int, error) {
	reader := bufio.NewReader(r)
	matches := 0
	for {
		// Lines have no length limit.
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 && validatedPath.Match(bytes.TrimSuffix(line, []byte{'\n'})) {
			matches++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	return matches + 1, nil
}
