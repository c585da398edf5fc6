package infra

// pdf.go — supply report generation using go-pdf/fpdf.
// Produces an A4 landscape table of supply line items with a grand total row.
// The output file is saved to storagePath/reporte_suministros_{timestamp}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateSuministrosPDF writes a supply report PDF and returns its path.
// titulo goes in the header (usually the project name or "Todos los proyectos").
func GenerateSuministrosPDF(filas []model.Suministro, titulo, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_suministros_%d.pdf", time.Now().Unix())
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Reporte de Suministros", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, titulo, "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Column layout ─────────────────────────────────────────────────────────
	cols := []struct {
		label string
		w     float64
		align string
	}{
		{"Fecha", 0.08, "L"},
		{"Folio", 0.09, "L"},
		{"Proveedor", 0.16, "L"},
		{"Suministro", 0.22, "L"},
		{"Cantidad", 0.08, "R"},
		{"Unidad", 0.07, "C"},
		{"P. Unitario", 0.10, "R"},
		{"Subtotal", 0.10, "R"},
		{"Total", 0.10, "R"},
	}

	pdf.SetFont("Helvetica", "B", 8)
	for i, c := range cols {
		brk := 0
		if i == len(cols)-1 {
			brk = 1
		}
		pdf.CellFormat(contentW*c.w, 6, c.label, "B", brk, c.align, false, 0, "")
	}

	// ── Rows ──────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	totalGeneral := decimal.Zero
	for i := range filas {
		f := &filas[i]

		proveedor := ""
		if f.Proveedor != nil {
			proveedor = f.Proveedor.Nombre
		}
		unidad := ""
		if f.UnidadMedida != nil {
			unidad = f.UnidadMedida.Simbolo
		}
		folio := ""
		if f.Folio != nil {
			folio = *f.Folio
		}

		pdf.CellFormat(contentW*cols[0].w, 5, f.Fecha.Format("02/01/2006"), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*cols[1].w, 5, recortar(folio, 14), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*cols[2].w, 5, recortar(proveedor, 26), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*cols[3].w, 5, recortar(f.Nombre, 38), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*cols[4].w, 5, formatoDecimal(f.Cantidad), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*cols[5].w, 5, unidad, "", 0, "C", false, 0, "")
		pdf.CellFormat(contentW*cols[6].w, 5, formatoMonto(f.PrecioUnitario), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*cols[7].w, 5, formatoMonto(f.Subtotal), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*cols[8].w, 5, formatoMonto(f.CostoTotal), "", 1, "R", false, 0, "")

		if f.CostoTotal != nil {
			totalGeneral = totalGeneral.Add(*f.CostoTotal)
		}
	}

	// ── Grand total ───────────────────────────────────────────────────────────
	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(1)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.90, 6, "Total general", "", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*0.10, 6, "$"+totalGeneral.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

func recortar(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func formatoDecimal(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

func formatoMonto(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return "$" + d.StringFixed(2)
}
