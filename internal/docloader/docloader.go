// Package docloader turns user-supplied contract files into the plain-text
// form the review pipeline consumes.
package docloader

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"contractreview/internal/review"
)

// EstimateTokens approximates the token count of text from its unicode
// scalar count. The divisor is an empirical blend for mixed Chinese/English
// contract text; rounding is half-to-even.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	estimate := float64(utf8.RuneCountInString(text)) / 3.8
	n := int(math.RoundToEven(estimate))
	if n < 1 {
		return 1
	}
	return n
}

// DetectKind maps a file name to its document kind.
func DetectKind(name string) (review.DocumentKind, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case "txt":
		return review.DocumentPlainText, nil
	case "pdf":
		return review.DocumentPDF, nil
	case "docx":
		return review.DocumentDocx, nil
	case "":
		return "", review.NewError(review.ErrInvalidFileType, name)
	default:
		return "", review.NewUnsupportedFileType(ext)
	}
}

type cacheKey struct {
	path    string
	modTime int64
	size    int64
}

// Loader loads and normalizes contract documents. Loads are cached by path
// and file version so re-opening the same contract is free.
type Loader struct {
	cache *lru.Cache[cacheKey, review.LoadedDocument]
}

func New() *Loader {
	cache, _ := lru.New[cacheKey, review.LoadedDocument](64)
	return &Loader{cache: cache}
}

// Load reads the file at path, extracts its text and validates it against
// maxTokens (0 means unlimited). PDF text cannot be extracted here; PDF
// content arrives pre-extracted through FromText.
func (l *Loader) Load(path string, maxTokens int) (review.LoadedDocument, error) {
	kind, err := DetectKind(path)
	if err != nil {
		return review.LoadedDocument{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return review.LoadedDocument{}, review.NewError(review.ErrFileReadFailed, err.Error())
	}
	key := cacheKey{path: path, modTime: info.ModTime().UnixNano(), size: info.Size()}
	if doc, ok := l.cache.Get(key); ok {
		if err := checkLimit(doc, maxTokens); err != nil {
			return review.LoadedDocument{}, err
		}
		return doc, nil
	}

	var raw string
	switch kind {
	case review.DocumentPlainText:
		b, err := os.ReadFile(path)
		if err != nil {
			return review.LoadedDocument{}, review.NewError(review.ErrFileReadFailed, err.Error())
		}
		raw = string(b)
	case review.DocumentDocx:
		raw, err = extractDocx(path)
		if err != nil {
			return review.LoadedDocument{}, err
		}
	case review.DocumentPDF:
		return review.LoadedDocument{}, review.NewUnsupportedFileType("pdf")
	}

	doc, err := build(kind, raw, maxTokens)
	if err != nil {
		return review.LoadedDocument{}, err
	}
	l.cache.Add(key, doc)
	return doc, nil
}

// FromText wraps already-extracted text (a pasted contract, or PDF/DOCX
// text extracted by the caller) into a LoadedDocument named name.
func (l *Loader) FromText(name, text string, maxTokens int) (review.LoadedDocument, error) {
	kind, err := DetectKind(name)
	if err != nil {
		return review.LoadedDocument{}, err
	}
	return build(kind, text, maxTokens)
}

// build normalizes line endings, trims, and validates size.
func build(kind review.DocumentKind, raw string, maxTokens int) (review.LoadedDocument, error) {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return review.LoadedDocument{}, review.NewError(review.ErrEmptyDocument, "")
	}
	doc := review.LoadedDocument{
		Kind:                kind,
		Text:                text,
		CharacterCount:      utf8.RuneCountInString(text),
		EstimatedTokenCount: EstimateTokens(text),
	}
	if err := checkLimit(doc, maxTokens); err != nil {
		return review.LoadedDocument{}, err
	}
	return doc, nil
}

func checkLimit(doc review.LoadedDocument, maxTokens int) error {
	if maxTokens > 0 && doc.EstimatedTokenCount > maxTokens {
		return review.NewDocumentTooLarge(doc.EstimatedTokenCount, maxTokens)
	}
	return nil
}
