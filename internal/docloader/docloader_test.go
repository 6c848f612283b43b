package docloader

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"contractreview/internal/review"
	"contractreview/internal/tester"
)

func kindOf(t *testing.T, err error) review.ErrorKind {
	t.Helper()
	kind, ok := review.KindOf(err)
	tester.True(t, ok, "expected a typed review error")
	return kind
}

func TestEstimateTokens(t *testing.T) {
	tester.Eq(t, EstimateTokens(""), 0)
	// A single rune still counts as one token.
	tester.Eq(t, EstimateTokens("a"), 1)
	// 19 runes / 3.8 is exactly 5.
	tester.Eq(t, EstimateTokens(strings.Repeat("合", 19)), 5)
	tester.Eq(t, EstimateTokens(strings.Repeat("x", 38)), 10)
}

func TestDetectKind(t *testing.T) {
	kind, err := DetectKind("contract.txt")
	tester.NoErr(t, err)
	tester.Eq(t, kind, review.DocumentPlainText)

	kind, err = DetectKind("CONTRACT.PDF")
	tester.NoErr(t, err)
	tester.Eq(t, kind, review.DocumentPDF)

	kind, err = DetectKind("合同.docx")
	tester.NoErr(t, err)
	tester.Eq(t, kind, review.DocumentDocx)

	_, err = DetectKind("noextension")
	tester.Eq(t, kindOf(t, err), review.ErrInvalidFileType)

	_, err = DetectKind("contract.md")
	tester.Eq(t, kindOf(t, err), review.ErrUnsupportedFileType)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	tester.NoErr(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadNormalizesLineEndings(t *testing.T) {
	path := writeFile(t, "合同.txt", "第一条 标的\r\n第二条 价款\r最后一条\n")

	doc, err := New().Load(path, 0)
	tester.NoErr(t, err)
	tester.Eq(t, doc.Kind, review.DocumentPlainText)
	tester.Eq(t, doc.Text, "第一条 标的\n第二条 价款\n最后一条")
	tester.Eq(t, doc.CharacterCount, 18)
	tester.Eq(t, doc.EstimatedTokenCount, EstimateTokens(doc.Text))
}

func TestLoadEmptyDocument(t *testing.T) {
	path := writeFile(t, "blank.txt", "  \r\n\t \n")
	_, err := New().Load(path, 0)
	tester.Eq(t, kindOf(t, err), review.ErrEmptyDocument)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New().Load(filepath.Join(t.TempDir(), "absent.txt"), 0)
	tester.Eq(t, kindOf(t, err), review.ErrFileReadFailed)
}

func TestLoadEnforcesTokenLimit(t *testing.T) {
	path := writeFile(t, "big.txt", strings.Repeat("甲", 380))
	loader := New()

	_, err := loader.Load(path, 10)
	tester.Eq(t, kindOf(t, err), review.ErrDocumentTooLarge)

	// The same file passes with room to spare. Zero means unlimited.
	doc, err := loader.Load(path, 0)
	tester.NoErr(t, err)
	tester.Eq(t, doc.EstimatedTokenCount, 100)
}

func TestLoadPDFNeedsPreExtractedText(t *testing.T) {
	path := writeFile(t, "scan.pdf", "%PDF-1.4")
	_, err := New().Load(path, 0)
	tester.Eq(t, kindOf(t, err), review.ErrUnsupportedFileType)
}

func TestLoadCachesByFileVersion(t *testing.T) {
	original := strings.Repeat("原", 40)
	path := writeFile(t, "合同.txt", original)
	loader := New()

	doc, err := loader.Load(path, 0)
	tester.NoErr(t, err)
	tester.Eq(t, doc.Text, original)

	// Same file version hits the cache but still honors the limit.
	_, err = loader.Load(path, 1)
	tester.Eq(t, kindOf(t, err), review.ErrDocumentTooLarge)

	// Rewriting invalidates the cached entry.
	tester.NoErr(t, os.WriteFile(path, []byte("更新后的内容"), 0o644))
	doc, err = loader.Load(path, 0)
	tester.NoErr(t, err)
	tester.Eq(t, doc.Text, "更新后的内容")
}

func TestFromText(t *testing.T) {
	loader := New()

	doc, err := loader.FromText("pasted.pdf", "从 PDF 提取的正文\r\n第二行", 0)
	tester.NoErr(t, err)
	tester.Eq(t, doc.Kind, review.DocumentPDF)
	tester.Eq(t, doc.Text, "从 PDF 提取的正文\n第二行")

	_, err = loader.FromText("c.txt", "   ", 0)
	tester.Eq(t, kindOf(t, err), review.ErrEmptyDocument)

	_, err = loader.FromText("c.exe", "text", 0)
	tester.Eq(t, kindOf(t, err), review.ErrUnsupportedFileType)
}

// writeDocx builds a minimal docx: a zip holding word/document.xml.
func writeDocx(t *testing.T, documentXML string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "合同.docx")
	f, err := os.Create(path)
	tester.NoErr(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	tester.NoErr(t, err)
	_, err = w.Write([]byte(documentXML))
	tester.NoErr(t, err)
	tester.NoErr(t, zw.Close())
	tester.NoErr(t, f.Close())
	return path
}

func TestLoadDocxExtractsParagraphsTabsAndBreaks(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>第一条</w:t><w:tab/><w:t>标的</w:t></w:r></w:p>
    <w:p><w:r><w:t>第二条</w:t><w:br/><w:t>价款</w:t></w:r></w:p>
  </w:body>
</w:document>`
	path := writeDocx(t, doc)

	got, err := New().Load(path, 0)
	tester.NoErr(t, err)
	tester.Eq(t, got.Kind, review.DocumentDocx)
	tester.Contains(t, got.Text, "第一条\t标的")
	tester.Contains(t, got.Text, "第二条\n价款")
}

func TestLoadDocxWithoutDocumentXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	f, err := os.Create(path)
	tester.NoErr(t, err)
	zw := zip.NewWriter(f)
	_, err = zw.Create("word/styles.xml")
	tester.NoErr(t, err)
	tester.NoErr(t, zw.Close())
	tester.NoErr(t, f.Close())

	_, err = New().Load(path, 0)
	tester.Eq(t, kindOf(t, err), review.ErrFileReadFailed)
}
