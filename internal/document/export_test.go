package document

import "time"

// NewUncompressedPDFRenderer leaves page streams readable for assertions.
func NewUncompressedPDFRenderer() Renderer {
	return &pdfRenderer{now: time.Now}
}

var PDFText = pdfText
