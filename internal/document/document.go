package document

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "DejaVu"

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	regularFont []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	boldFont []byte
)

var ErrEmptyDocument = errors.New("document: empty body")

type Document struct {
	Title    string
	Subtitle string
	Body     string
}

type Renderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
}

type pdfRenderer struct {
	now      func() time.Time
	compress bool
}

func NewPDFRenderer() Renderer {
	return &pdfRenderer{now: time.Now, compress: true}
}

func (r *pdfRenderer) Render(ctx context.Context, doc Document) ([]byte, error) {
	if strings.TrimSpace(doc.Body) == "" {
		return nil, ErrEmptyDocument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.AddUTF8FontFromBytes(fontFamily, "", regularFont)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", boldFont)

	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("roadmap", true)
	pdf.SetCreationDate(r.now())
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 18)
	pdf.MultiCell(0, 9, pdfText(doc.Title), "", "L", false)
	if doc.Subtitle != "" {
		pdf.SetFont(fontFamily, "", 11)
		pdf.SetTextColor(90, 90, 90)
		pdf.MultiCell(0, 6, pdfText(doc.Subtitle), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)

	for _, block := range Parse(doc.Body) {
		switch block.Kind {
		case BlockHeading:
			pdf.Ln(2)
			pdf.SetFont(fontFamily, "B", 13)
			pdf.MultiCell(0, 7, pdfText(block.Text), "", "L", false)
		case BlockBullet:
			pdf.SetFont(fontFamily, "", 11)
			pdf.SetX(pdf.GetX() + 4)
			pdf.MultiCell(0, 6, pdfText("• "+block.Text), "", "L", false)
		case BlockBlank:
			pdf.Ln(3)
		default:
			pdf.SetFont(fontFamily, "", 11)
			pdf.MultiCell(0, 6, pdfText(block.Text), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfText prepares a line for the embedded UTF-8 font. fpdf encodes text as
// two-byte codes, so runes outside the Basic Multilingual Plane (most emoji)
// become "?" instead of broken surrogate pairs. Control characters are dropped.
func pdfText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r > 0xFFFF:
			return '?'
		case r < 0x20, r == 0x7F:
			return -1
		}
		return r
	}, s)
}
