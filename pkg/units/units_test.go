/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesToMB(t *testing.T) {
	assert.Equal(t, uint64(0), BytesToMB(1024*1024-1))
	assert.Equal(t, uint64(1), BytesToMB(1024*1024))
	assert.Equal(t, uint64(2048), BytesToMB(2048*1024*1024))
}

func TestBytesToGB(t *testing.T) {
	assert.Equal(t, uint64(0), BytesToGB(1024*1024*1024-1))
	assert.Equal(t, uint64(1), BytesToGB(1024*1024*1024))
	assert.Equal(t, uint64(10), BytesToGB(10*1024*1024*1024))
}

func TestKBToMB(t *testing.T) {
	assert.Equal(t, uint64(2000), KBToMB(2048000))
	assert.Equal(t, uint64(0), KBToMB(1023))
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes uint64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"below one KB", 512, "512 B"},
		{"exact KB", 1024, "1.00 KB"},
		{"fractional MB", 1536 * 1024, "1.50 MB"},
		{"GB", 5 * 1024 * 1024 * 1024, "5.00 GB"},
		{"TB", 2 * 1024 * 1024 * 1024 * 1024, "2.00 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}
