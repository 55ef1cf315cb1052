// Package input reads puzzle input files.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadLines returns the lines of the file at path without their line
// terminators. A trailing empty line is not reported.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}
	return lines, nil
}

// Ints parses the sep-separated integers of s. Surrounding spaces are
// ignored.
func Ints(s, sep string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, sep)
	values := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", field, err)
		}
		values[i] = v
	}
	return values, nil
}
