package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// FileInfo describes a PDF that passed validation
type FileInfo struct {
	Path  string `json:"path"`
	Size  int64  `json:"size"`
	Pages int    `json:"pages"`
}

// Validator checks that a file is a readable, unencrypted PDF before any
// extraction starts
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a validator with the given size limit
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{maxFileSize: maxFileSize}
}

// ValidateFile checks the file and returns its page count
func (v *Validator) ValidateFile(path string) (*FileInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if err := v.ValidateFileInfo(path, fileInfo); err != nil {
		return nil, err
	}

	pages, err := v.inspect(path)
	if err != nil {
		return nil, err
	}

	return &FileInfo{Path: path, Size: fileInfo.Size(), Pages: pages}, nil
}

// ValidateFileInfo performs the checks that need no parsing
func (v *Validator) ValidateFileInfo(path string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}

	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", path)
	}

	if fileInfo.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)", fileInfo.Size(), v.maxFileSize)
	}

	return nil
}

// inspect reads the document structure with pdfcpu in relaxed mode
func (v *Validator) inspect(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if ctx.Encrypt != nil {
		return 0, fmt.Errorf("%w: %s", ErrEncrypted, path)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, fmt.Errorf("%w: failed to count pages: %v", ErrUnreadable, err)
	}

	return ctx.PageCount, nil
}
