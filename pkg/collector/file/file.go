/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package file provides the small set of file-reading primitives the
// collectors share: line iteration, key/value parsing, and single-line
// reads for /sys attribute files. Virtual files under /proc and /sys
// report a zero size, so everything here reads through bufio rather
// than trusting Stat.
package file

import (
	"bufio"
	"os"
	"strings"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser reads text sources line by line with configurable key/value
// splitting. The zero configuration splits on "=" and keeps values
// verbatim.
type Parser struct {
	kvDelimiter  string
	vTrimChars   string
	skipComments bool
	maxLines     int
}

// WithKVDelimiter sets the key-value delimiter used by Map.
// Default is "=".
func WithKVDelimiter(delim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = delim
	}
}

// WithVTrimChars sets characters trimmed from both ends of values in
// Map, e.g. `"` for quoted os-release values. Default is none.
func WithVTrimChars(chars string) Option {
	return func(p *Parser) {
		p.vTrimChars = chars
	}
}

// WithSkipComments controls whether lines starting with '#' are
// dropped. Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithMaxLines caps how many lines are read from a source. Default is
// 65536, far above anything /proc or /etc produces in practice.
func WithMaxLines(n int) Option {
	return func(p *Parser) {
		p.maxLines = n
	}
}

// NewParser creates a Parser with the provided options applied over
// the defaults.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		kvDelimiter:  "=",
		skipComments: true,
		maxLines:     1 << 16,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Lines reads the file at path and returns its non-empty lines,
// trimmed of surrounding whitespace. Comment lines are dropped when
// configured.
func (p *Parser) Lines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() && len(lines) < p.maxLines {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if p.skipComments && strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Map reads the file at path and parses each line as a key/value pair
// split on the configured delimiter. Lines without the delimiter are
// skipped. Keys and values are whitespace-trimmed; values additionally
// have the configured trim characters removed.
func (p *Parser) Map(path string) (map[string]string, error) {
	lines, err := p.Lines(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(lines))
	for _, line := range lines {
		key, value, ok := strings.Cut(line, p.kvDelimiter)
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if p.vTrimChars != "" {
			value = strings.Trim(value, p.vTrimChars)
		}
		result[key] = value
	}
	return result, nil
}

// FirstLine reads the first line of the file at path, trimmed of
// surrounding whitespace. Missing or empty files yield "".
func FirstLine(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
