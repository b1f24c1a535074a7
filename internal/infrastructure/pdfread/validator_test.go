package pdfread

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUpload(t *testing.T) {
	maxSize := int64(10 << 20)

	assert.NoError(t, ValidateUpload([]byte("%PDF-1.7 ..."), maxSize))
	assert.ErrorIs(t, ValidateUpload(nil, maxSize), ErrEmptyFile)
	assert.ErrorIs(t, ValidateUpload([]byte("<html>"), maxSize), ErrNotPDF)
	assert.ErrorIs(t, ValidateUpload(bytes.Repeat([]byte("a"), 11), 10), ErrTooLarge)
}
