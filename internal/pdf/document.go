package pdf

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultXTolerance is the horizontal gap, in points, beyond which two
// glyph runs on a row are joined with a space
const DefaultXTolerance = 1.0

var (
	// ErrUnreadable wraps failures to parse a PDF or one of its pages
	ErrUnreadable = errors.New("unreadable PDF")
	// ErrEncrypted is returned for encrypted documents
	ErrEncrypted = errors.New("encrypted PDF")
)

// Document serves the text layer of an open PDF one page at a time
type Document struct {
	path       string
	reader     *pdf.Reader
	closer     func() error
	xTolerance float64
}

// Open opens the PDF at path for page text extraction
func Open(path string, xTolerance float64) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrUnreadable, path, err)
	}
	if xTolerance < 0 {
		xTolerance = DefaultXTolerance
	}
	return &Document{
		path:       path,
		reader:     reader,
		closer:     f.Close,
		xTolerance: xTolerance,
	}, nil
}

// Path returns the file the document was opened from
func (d *Document) Path() string {
	return d.path
}

// NumPages returns the page count
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// PageText returns the plain text of a 1-indexed page, one text row per line
func (d *Document) PageText(pageNum int) (text string, err error) {
	if pageNum < 1 || pageNum > d.reader.NumPage() {
		return "", fmt.Errorf("invalid page number %d (document has %d pages)", pageNum, d.reader.NumPage())
	}

	// ledongthuc/pdf panics on some malformed content streams
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: page %d: %v", ErrUnreadable, pageNum, r)
		}
	}()

	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return "", nil
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return "", fmt.Errorf("%w: page %d: %v", ErrUnreadable, pageNum, err)
	}
	if len(rows) > 0 {
		return joinRows(rows, d.xTolerance), nil
	}

	plain, err := page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("%w: page %d: %v", ErrUnreadable, pageNum, err)
	}
	return plain, nil
}

// Close releases the underlying file
func (d *Document) Close() error {
	if d.closer == nil {
		return nil
	}
	closer := d.closer
	d.closer = nil
	return closer()
}

// joinRows renders rows top to bottom. Runs inside a row are ordered left to
// right and separated by a space when the gap exceeds tolerance.
func joinRows(rows pdf.Rows, tolerance float64) string {
	ordered := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil {
			ordered = append(ordered, row)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position > ordered[j].Position
	})

	lines := make([]string, 0, len(ordered))
	for _, row := range ordered {
		runs := make([]pdf.Text, len(row.Content))
		copy(runs, row.Content)
		sort.SliceStable(runs, func(i, j int) bool { return runs[i].X < runs[j].X })

		var b strings.Builder
		for i, run := range runs {
			if i > 0 {
				prev := runs[i-1]
				if run.X-(prev.X+prev.W) > tolerance && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(run.S, " ") {
					b.WriteByte(' ')
				}
			}
			b.WriteString(run.S)
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(lines, "\n")
}
