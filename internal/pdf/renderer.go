// Package pdf renders a petition into a two-page printable document:
// identity details, description and the profile/signature images on page
// one, the identity document scaled to fit on page two.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/dseu-petition/petition-api/internal/models"
)

// Loader fetches an embedded image by URL and reports its fpdf image type
// ("PNG" or "JPEG"). Behind an interface so rendering tests run offline.
type Loader interface {
	Load(ctx context.Context, url string) ([]byte, string, error)
}

type HTTPLoader struct {
	Client *http.Client
}

func NewHTTPLoader() *HTTPLoader {
	return &HTTPLoader{Client: &http.Client{Timeout: 15 * time.Second}}
}

func (l *HTTPLoader) Load(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, "", err
	}
	return data, imageType(url), nil
}

func imageType(url string) string {
	if strings.HasSuffix(strings.ToLower(url), ".png") {
		return "PNG"
	}
	return "JPEG"
}

const margin = 20.0

type Renderer struct {
	loader Loader
}

func NewRenderer(loader Loader) *Renderer {
	return &Renderer{loader: loader}
}

func (r *Renderer) Render(ctx context.Context, p *models.Petition) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	pageW, pageH := doc.GetPageSize()

	doc.AddPage()

	// Centered, underlined heading
	doc.SetFont("Helvetica", "B", 20)
	title := "DSEU STUDENT PETITION"
	tw := doc.GetStringWidth(title)
	doc.Text((pageW-tw)/2, margin, title)
	doc.Line((pageW-tw)/2, margin+2, (pageW+tw)/2, margin+2)

	startY := margin + 15

	// Profile photo on the right, details on the left at the same height
	r.embed(ctx, doc, p.ProfileURL, "profile", pageW-margin-40, startY, 40, "profile photo unavailable")

	doc.SetFont("Helvetica", "", 12)
	y := startY
	details := []string{
		"Name: " + p.FullName,
		"College: " + p.CollegeName,
		"Roll Number: " + p.RollNumber,
		"Email: " + p.Email,
		"Phone: " + p.PhoneNumber,
		"Date: " + p.CreatedAt.Format("02/01/2006"),
	}
	for _, d := range details {
		doc.Text(margin, y, d)
		y += 8
	}

	y += 10
	doc.SetFont("Helvetica", "B", 14)
	doc.Text(margin, y, "Problem Description:")
	y += 5
	doc.SetFont("Helvetica", "", 12)
	doc.SetXY(margin, y)
	doc.MultiCell(pageW-2*margin, 7, p.ProblemDescription, "", "L", false)
	y = doc.GetY() + 10

	// Signature below the description
	sigH := r.embed(ctx, doc, p.SignatureURL, "signature", margin, y, 60, "signature unavailable")
	y += sigH + 10
	doc.Text(margin+20, y, "Signature")

	// Page two: identity document scaled to fit within the margins
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 16)
	subtitle := "Identity Verification Document"
	doc.Text((pageW-doc.GetStringWidth(subtitle))/2, margin, subtitle)
	doc.SetFont("Helvetica", "", 12)

	if strings.HasSuffix(strings.ToLower(p.AadharURL), ".pdf") {
		doc.Text(margin, margin+40, "Identity document provided as a separate PDF:")
		doc.Text(margin, margin+48, p.AadharURL)
	} else {
		r.embedFitted(ctx, doc, p.AadharURL, pageW-2*margin, pageH-3*margin, pageW, margin+20)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// embed draws an image at (x, y) with fixed width and proportional height,
// returning the rendered height. A load failure becomes an inline notice
// and never aborts the rest of the document.
func (r *Renderer) embed(ctx context.Context, doc *fpdf.Fpdf, url, name string, x, y, width float64, notice string) float64 {
	data, typ, err := r.loader.Load(ctx, url)
	if err != nil {
		doc.SetFont("Helvetica", "I", 10)
		doc.Text(x, y+5, notice)
		doc.SetFont("Helvetica", "", 12)
		return 10
	}
	opts := fpdf.ImageOptions{ImageType: typ}
	info := doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if doc.Err() || info == nil || info.Width() == 0 {
		// Bad image data must not poison the rest of the document.
		doc.ClearError()
		doc.Text(x, y+5, notice)
		return 10
	}
	height := info.Height() * width / info.Width()
	doc.ImageOptions(name, x, y, width, height, false, opts, 0, "")
	return height
}

// embedFitted centers an image horizontally, shrinking it to fit within
// maxW x maxH while preserving aspect ratio.
func (r *Renderer) embedFitted(ctx context.Context, doc *fpdf.Fpdf, url string, maxW, maxH, pageW, y float64) {
	data, typ, err := r.loader.Load(ctx, url)
	if err != nil {
		doc.Text(margin, margin+40, "Error loading identity document")
		return
	}
	opts := fpdf.ImageOptions{ImageType: typ}
	info := doc.RegisterImageOptionsReader("aadhar", opts, bytes.NewReader(data))
	if doc.Err() || info == nil || info.Width() == 0 {
		doc.ClearError()
		doc.Text(margin, margin+40, "Error loading identity document")
		return
	}

	w, h := info.Width(), info.Height()
	if w > maxW {
		ratio := maxW / w
		w *= ratio
		h *= ratio
	}
	if h > maxH {
		ratio := maxH / h
		w *= ratio
		h *= ratio
	}
	doc.ImageOptions("aadhar", (pageW-w)/2, y, w, h, false, opts, 0, "")
}
