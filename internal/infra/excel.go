package infra

// excel.go — report generation using excelize.
// One sheet per workbook, header row, one row per record, grand total at the end.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const sheetSuministros = "Suministros"

// GenerateSuministrosExcel writes a supply report workbook and returns its path.
func GenerateSuministrosExcel(filas []model.Suministro, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("excel: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_suministros_%d.xlsx", time.Now().Unix())
	filePath := filepath.Join(storagePath, fileName)

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetSuministros)
	if err != nil {
		return "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"Fecha", "Folio", "Proyecto", "Proveedor", "Categoría", "Suministro",
		"Cantidad", "Unidad", "Precio Unitario", "Subtotal", "Costo Total", "Estado",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetSuministros, cell, h)
	}

	totalGeneral := decimal.Zero
	for i := range filas {
		fila := &filas[i]
		row := i + 2

		proyecto, proveedor, categoria, unidad := "", "", "", ""
		if fila.Proyecto != nil {
			proyecto = fila.Proyecto.Nombre
		}
		if fila.Proveedor != nil {
			proveedor = fila.Proveedor.Nombre
		}
		if fila.Categoria != nil {
			categoria = fila.Categoria.Nombre
		}
		if fila.UnidadMedida != nil {
			unidad = fila.UnidadMedida.Simbolo
		}
		folio := ""
		if fila.Folio != nil {
			folio = *fila.Folio
		}

		values := []interface{}{
			fila.Fecha.Format("2006-01-02"),
			folio,
			proyecto,
			proveedor,
			categoria,
			fila.Nombre,
			celdaDecimal(fila.Cantidad),
			unidad,
			celdaDecimal(fila.PrecioUnitario),
			celdaDecimal(fila.Subtotal),
			celdaDecimal(fila.CostoTotal),
			fila.Estado,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetSuministros, cell, v)
		}

		if fila.CostoTotal != nil {
			totalGeneral = totalGeneral.Add(*fila.CostoTotal)
		}
	}

	totalRow := len(filas) + 3
	labelCell, _ := excelize.CoordinatesToCellName(10, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(11, totalRow)
	f.SetCellValue(sheetSuministros, labelCell, "Total general")
	f.SetCellValue(sheetSuministros, valueCell, totalGeneral.InexactFloat64())

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("excel: write file: %w", err)
	}
	return filePath, nil
}

const sheetAdeudos = "Adeudos"

// GenerateAdeudosExcel writes a debt report workbook and returns its path.
func GenerateAdeudosExcel(filas []model.Adeudo, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("excel: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_adeudos_%d.xlsx", time.Now().Unix())
	filePath := filepath.Join(storagePath, fileName)

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetAdeudos)
	if err != nil {
		return "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"Descripción", "Proveedor", "Proyecto", "Monto Total", "Monto Pagado",
		"Saldo", "Fecha Vencimiento", "Estado",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetAdeudos, cell, h)
	}

	saldoGeneral := decimal.Zero
	for i := range filas {
		fila := &filas[i]
		row := i + 2

		proveedor, proyecto, vencimiento := "", "", ""
		if fila.Proveedor != nil {
			proveedor = fila.Proveedor.Nombre
		}
		if fila.Proyecto != nil {
			proyecto = fila.Proyecto.Nombre
		}
		if fila.FechaVencimiento != nil {
			vencimiento = fila.FechaVencimiento.Format("2006-01-02")
		}
		saldo := fila.MontoTotal.Sub(fila.MontoPagado)

		values := []interface{}{
			fila.Descripcion,
			proveedor,
			proyecto,
			fila.MontoTotal.InexactFloat64(),
			fila.MontoPagado.InexactFloat64(),
			saldo.InexactFloat64(),
			vencimiento,
			fila.Estado,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetAdeudos, cell, v)
		}

		saldoGeneral = saldoGeneral.Add(saldo)
	}

	totalRow := len(filas) + 3
	labelCell, _ := excelize.CoordinatesToCellName(5, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(6, totalRow)
	f.SetCellValue(sheetAdeudos, labelCell, "Saldo general")
	f.SetCellValue(sheetAdeudos, valueCell, saldoGeneral.InexactFloat64())

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("excel: write file: %w", err)
	}
	return filePath, nil
}

// celdaDecimal converts an optional decimal to a cell value; amounts are
// written as floats for spreadsheet arithmetic, absent values as blanks.
func celdaDecimal(d *decimal.Decimal) interface{} {
	if d == nil {
		return ""
	}
	return d.InexactFloat64()
}
