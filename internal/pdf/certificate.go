package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"volunteerhub-backend/internal/domain"
)

// CertificateRenderer draws participation certificates. FontPath must
// point at a TTF that covers Japanese; without it gofpdf's core fonts
// would garble the text.
type CertificateRenderer struct {
	fontPath string
}

func NewCertificateRenderer(fontPath string) *CertificateRenderer {
	return &CertificateRenderer{fontPath: fontPath}
}

// Render produces a single A4 page and returns the PDF bytes.
func (r *CertificateRenderer) Render(data *domain.CertificateData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	font := "cert"
	if r.fontPath != "" {
		doc.AddUTF8Font(font, "", r.fontPath)
	} else {
		font = "Helvetica"
	}
	doc.AddPage()

	w, h := doc.GetPageSize()

	// Double border.
	doc.SetLineWidth(1.2)
	doc.Rect(8, 8, w-16, h-16, "D")
	doc.SetLineWidth(0.3)
	doc.Rect(11, 11, w-22, h-22, "D")

	doc.SetFont(font, "", 26)
	doc.SetY(40)
	doc.CellFormat(0, 14, "ボランティア活動証明書", "", 1, "C", false, 0, "")

	doc.SetFont(font, "", 16)
	doc.SetY(70)
	doc.CellFormat(0, 10, fmt.Sprintf("%s 殿", data.VolunteerName), "", 1, "C", false, 0, "")

	doc.SetFont(font, "", 12)
	doc.SetY(90)
	doc.CellFormat(0, 8, "下記のボランティア活動に参加されたことを証明します。", "", 1, "C", false, 0, "")

	doc.SetY(110)
	doc.SetX(30)
	doc.CellFormat(0, 8, fmt.Sprintf("活動名: %s", data.Title), "", 1, "L", false, 0, "")

	// The description box grows with its wrapped line count but never
	// drops below two lines.
	text := "活動内容: " + data.Description
	lines := doc.SplitText(text, w-64)
	boxHeight := float64(len(lines))*7 + 4
	if boxHeight < 18 {
		boxHeight = 18
	}
	doc.Rect(30, 122, w-60, boxHeight, "D")
	doc.SetY(124)
	doc.SetX(32)
	doc.MultiCell(w-64, 7, text, "", "L", false)
	doc.SetY(122 + boxHeight)

	doc.SetY(doc.GetY() + 8)
	doc.SetX(30)
	doc.CellFormat(0, 8, fmt.Sprintf("活動期間: %s 〜 %s", data.StartDate, data.EndDate), "", 1, "L", false, 0, "")
	doc.SetX(30)
	doc.CellFormat(0, 8, "活動時間: 別途記載", "", 1, "L", false, 0, "")

	doc.SetY(h - 70)
	doc.CellFormat(0, 8, fmt.Sprintf("発行日: %s", time.Now().Format("2006-01-02")), "", 1, "C", false, 0, "")
	doc.SetY(h - 55)
	doc.CellFormat(0, 8, "地域支援Hub", "", 1, "C", false, 0, "")
	doc.CellFormat(0, 8, "[公印]", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render certificate: %w", err)
	}
	return buf.Bytes(), nil
}
