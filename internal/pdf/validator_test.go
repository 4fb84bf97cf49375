package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a3tai/pdf-quiz/internal/pdf/pdftest"
)

func TestValidator_ValidateFileInfo(t *testing.T) {
	validator := NewValidator(1024 * 1024) // 1MB limit
	tempDir := t.TempDir()

	validPDFPath := filepath.Join(tempDir, "valid.pdf")
	upperPDFPath := filepath.Join(tempDir, "UPPER.PDF")
	largePDFPath := filepath.Join(tempDir, "large.pdf")
	emptyPDFPath := filepath.Join(tempDir, "empty.pdf")
	nonPDFPath := filepath.Join(tempDir, "document.txt")

	require.NoError(t, os.WriteFile(validPDFPath, make([]byte, 1024), 0o644))
	require.NoError(t, os.WriteFile(upperPDFPath, make([]byte, 1024), 0o644))
	require.NoError(t, os.WriteFile(largePDFPath, make([]byte, 2*1024*1024), 0o644))
	require.NoError(t, os.WriteFile(emptyPDFPath, []byte{}, 0o644))
	require.NoError(t, os.WriteFile(nonPDFPath, []byte("not a pdf"), 0o644))

	tests := []struct {
		name     string
		filePath string
		errorMsg string
	}{
		{name: "valid PDF file", filePath: validPDFPath},
		{name: "upper case extension", filePath: upperPDFPath},
		{name: "large PDF file", filePath: largePDFPath, errorMsg: "file too large"},
		{name: "empty PDF file", filePath: emptyPDFPath, errorMsg: "file is empty"},
		{name: "non-PDF file", filePath: nonPDFPath, errorMsg: "file is not a PDF"},
		{name: "directory instead of file", filePath: tempDir, errorMsg: "path is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileInfo, err := os.Stat(tt.filePath)
			require.NoError(t, err)

			err = validator.ValidateFileInfo(tt.filePath, fileInfo)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestValidator_RejectsNonPDFContent(t *testing.T) {
	dir := t.TempDir()
	validator := NewValidator(1024 * 1024)

	good := pdftest.Write(t, dir, "good.pdf", [][]string{{"1. Question"}})
	_, err := validator.ValidateFile(good)
	assert.NoError(t, err)

	zeros := filepath.Join(dir, "zeros.pdf")
	require.NoError(t, os.WriteFile(zeros, make([]byte, 512), 0o644))
	_, err = validator.ValidateFile(zeros)
	assert.Error(t, err)
	_, err = validator.ValidateFile(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)
}

func TestValidator_UnreadableWrapsSentinel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\nthis is not a body"), 0o644))

	_, err := NewValidator(1024).ValidateFile(path)
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestNewValidator(t *testing.T) {
	for _, size := range []int64{1, 1024, 100 * 1024 * 1024} {
		v := NewValidator(size)
		require.NotNil(t, v)
		assert.Equal(t, size, v.maxFileSize)
	}
}
