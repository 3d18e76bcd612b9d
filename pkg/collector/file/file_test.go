/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLines(t *testing.T) {
	path := writeFixture(t, "lines", "first\n\n  second  \n# comment\nthird\n")

	lines, err := NewParser().Lines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, lines)
}

func TestLinesKeepsComments(t *testing.T) {
	path := writeFixture(t, "lines", "# kept\nvalue\n")

	lines, err := NewParser(WithSkipComments(false)).Lines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"# kept", "value"}, lines)
}

func TestLinesMissingFile(t *testing.T) {
	_, err := NewParser().Lines(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestMap(t *testing.T) {
	path := writeFixture(t, "release", `NAME="Test OS"
ID=testos
VERSION_ID="1.0"
malformed line
PRETTY_NAME="Test OS 1.0"
`)

	m, err := NewParser(WithVTrimChars(`"`)).Map(path)
	require.NoError(t, err)
	assert.Equal(t, "Test OS", m["NAME"])
	assert.Equal(t, "testos", m["ID"])
	assert.Equal(t, "1.0", m["VERSION_ID"])
	assert.Equal(t, "Test OS 1.0", m["PRETTY_NAME"])
	assert.NotContains(t, m, "malformed line")
}

func TestMapColonDelimiter(t *testing.T) {
	path := writeFixture(t, "kv", "model name : AMD EPYC 7543\ncpu MHz : 2794.748\n")

	m, err := NewParser(WithKVDelimiter(":")).Map(path)
	require.NoError(t, err)
	assert.Equal(t, "AMD EPYC 7543", m["model name"])
	assert.Equal(t, "2794.748", m["cpu MHz"])
}

func TestFirstLine(t *testing.T) {
	path := writeFixture(t, "address", "aa:bb:cc:dd:ee:ff\nextra\n")
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", FirstLine(path))
}

func TestFirstLineMissingOrEmpty(t *testing.T) {
	assert.Equal(t, "", FirstLine(filepath.Join(t.TempDir(), "absent")))
	assert.Equal(t, "", FirstLine(writeFixture(t, "empty", "")))
}
