package pagereplace

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadReferenceString loads a page-replacement case from path: the first
// non-empty line is the frame count, each following non-empty line one page
// number.
func ReadReferenceString(path string) (frameCount int, refs []int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("open data source: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		value, convErr := strconv.Atoi(line)
		if convErr != nil {
			return 0, nil, fmt.Errorf("%s:%d: %w", path, lineNo, convErr)
		}
		if frameCount == 0 && refs == nil {
			if value <= 0 {
				return 0, nil, fmt.Errorf("%s:%d: frame count must be positive, got %d", path, lineNo, value)
			}
			frameCount = value
			refs = make([]int, 0)
			continue
		}
		refs = append(refs, value)
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if frameCount == 0 {
		return 0, nil, fmt.Errorf("%s: empty data source", path)
	}
	return frameCount, refs, nil
}
