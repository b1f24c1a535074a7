package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/livo/contratos-api/internal/domain/extract"
)

// Dimensões A4 em polegadas; margens de 20mm.
const (
	a4WidthIn  = 8.27
	a4HeightIn = 11.69
	marginIn   = 0.79
)

// ChromiumRenderer rasteriza o HTML do contrato via Chromium headless.
// Cada Render sobe uma instância do navegador e a derruba ao final — a
// liberação acontece em todo caminho de saída, inclusive erro e timeout.
type ChromiumRenderer struct {
	execPath string
	timeout  time.Duration
}

// NewChromiumRenderer constrói o renderizador. execPath vazio usa o
// Chromium do PATH; timeout zero usa 30s.
func NewChromiumRenderer(execPath string, timeout time.Duration) *ChromiumRenderer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromiumRenderer{execPath: execPath, timeout: timeout}
}

// Render monta o HTML (campos já escapados) e imprime em PDF A4.
func (r *ChromiumRenderer) Render(ctx context.Context, fields extract.Fields) ([]byte, error) {
	html, err := buildHTML(fields)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.timeout)
	defer cancelTimeout()

	dataURL := "data:text/html;charset=utf-8;base64," +
		base64.StdEncoding.EncodeToString([]byte(html))

	var pdfBytes []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate(dataURL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdfBytes, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthIn).
				WithPaperHeight(a4HeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromium: imprimir PDF: %w", err)
	}
	return pdfBytes, nil
}
