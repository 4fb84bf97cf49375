// Package pdftest generates small PDF documents for tests.
package pdftest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Build returns a minimal document with one Helvetica content stream per
// page. Each page entry is a list of lines drawn top to bottom.
func Build(pages [][]string) []byte {
	var (
		b       strings.Builder
		offsets []int
	)
	obj := func(body string) {
		offsets = append(offsets, b.Len())
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	b.WriteString("%PDF-1.4\n")
	obj("<<\n/Type /Catalog\n/Pages 2 0 R\n>>")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	obj(fmt.Sprintf("<<\n/Type /Pages\n/Kids [%s]\n/Count %d\n>>", strings.Join(kids, " "), len(pages)))
	obj("<<\n/Type /Font\n/Subtype /Type1\n/BaseFont /Helvetica\n>>")

	for i, lines := range pages {
		obj(fmt.Sprintf("<<\n/Type /Page\n/Parent 2 0 R\n/MediaBox [0 0 612 792]\n/Contents %d 0 R\n"+
			"/Resources <<\n/Font <<\n/F1 3 0 R\n>>\n>>\n>>", 5+2*i))

		var content strings.Builder
		for j, line := range lines {
			fmt.Fprintf(&content, "BT\n/F1 12 Tf\n72 %d Td\n(%s) Tj\nET\n", 720-20*j, escape(line))
		}
		obj(fmt.Sprintf("<<\n/Length %d\n>>\nstream\n%sendstream", content.Len(), content.String()))
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<<\n/Size %d\n/Root 1 0 R\n>>\nstartxref\n%d\n%%%%EOF", len(offsets)+1, xref)
	return []byte(b.String())
}

// Write stores a generated document under dir and returns its path
func Write(t *testing.T, dir, name string, pages [][]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, Build(pages), 0o644))
	return path
}

// escape quotes the characters that are special inside a PDF literal string
func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(s)
}
