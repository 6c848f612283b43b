package docloader

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"

	"contractreview/internal/review"
)

// extractDocx pulls the paragraph text out of word/document.xml inside the
// docx archive. Formatting is dropped; paragraphs become lines.
func extractDocx(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", review.NewError(review.ErrFileReadFailed, err.Error())
	}
	defer archive.Close()

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", review.NewError(review.ErrFileReadFailed, "word/document.xml missing")
	}
	r, err := document.Open()
	if err != nil {
		return "", review.NewError(review.ErrFileReadFailed, err.Error())
	}
	defer r.Close()
	return decodeDocumentXML(r)
}

// decodeDocumentXML walks the WordprocessingML token stream collecting text
// runs (w:t), inserting a newline at each paragraph end (w:p) and a tab for
// explicit tabs (w:tab).
func decodeDocumentXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	var inText bool
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", review.NewError(review.ErrFileReadFailed, err.Error())
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
