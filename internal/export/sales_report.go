// Package export renders sales reports as downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
)

// Format is a supported export document type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts xlsx or pdf, case-insensitively. Empty means xlsx.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileName names the download after the report period.
func (f Format) FileName(report *domain.SalesReport) string {
	return fmt.Sprintf("sales-report_%s_%s.%s", report.Period.Start, report.Period.End, f)
}

// BuildSalesReport renders report in the given format.
func BuildSalesReport(format Format, report *domain.SalesReport, generatedAt time.Time) ([]byte, error) {
	switch format {
	case FormatPDF:
		return BuildSalesReportPDF(report, generatedAt)
	case FormatXLSX:
		return BuildSalesReportXLSX(report, generatedAt)
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

// BuildSalesReportPDF renders a one-page PDF with the summary and breakdown tables.
func BuildSalesReportPDF(report *domain.SalesReport, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Sales Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s", report.Period.Start, report.Period.End))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format(time.RFC3339)))
	pdf.Ln(8)
	pdf.Cell(0, 6, fmt.Sprintf("Total Orders: %d", report.TotalOrders))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Revenue: %s", report.TotalRevenue.StringFixed(2)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Average Order Value: %s", report.AvgOrderValue.StringFixed(2)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 6, "Day", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Orders", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Sales", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, d := range report.Daily {
		pdf.CellFormat(40, 6, d.Date.String(), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", d.TotalOrders), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, d.TotalSales.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 6, "Category", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Sales", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, c := range report.ByCategory {
		pdf.CellFormat(70, 6, c.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, c.TotalSales.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildSalesReportXLSX renders summary, daily and category sheets.
func BuildSalesReportXLSX(report *domain.SalesReport, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	dailySheet := "daily"
	categorySheet := "categories"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to prepare workbook: %w", err)
	}
	if _, err := f.NewSheet(dailySheet); err != nil {
		return nil, fmt.Errorf("failed to prepare workbook: %w", err)
	}
	if _, err := f.NewSheet(categorySheet); err != nil {
		return nil, fmt.Errorf("failed to prepare workbook: %w", err)
	}

	_ = f.SetCellValue(summarySheet, "A1", "Sales Report")
	_ = f.SetCellValue(summarySheet, "A3", "Start Date")
	_ = f.SetCellValue(summarySheet, "B3", report.Period.Start.String())
	_ = f.SetCellValue(summarySheet, "A4", "End Date")
	_ = f.SetCellValue(summarySheet, "B4", report.Period.End.String())
	_ = f.SetCellValue(summarySheet, "A5", "Total Orders")
	_ = f.SetCellValue(summarySheet, "B5", report.TotalOrders)
	_ = f.SetCellValue(summarySheet, "A6", "Total Revenue")
	_ = f.SetCellValue(summarySheet, "B6", report.TotalRevenue.InexactFloat64())
	_ = f.SetCellValue(summarySheet, "A7", "Average Order Value")
	_ = f.SetCellValue(summarySheet, "B7", report.AvgOrderValue.Round(2).InexactFloat64())
	_ = f.SetCellValue(summarySheet, "A8", "Generated")
	_ = f.SetCellValue(summarySheet, "B8", generatedAt.Format(time.RFC3339))

	_ = f.SetCellValue(dailySheet, "A1", "Date")
	_ = f.SetCellValue(dailySheet, "B1", "Orders")
	_ = f.SetCellValue(dailySheet, "C1", "Sales")
	for i, d := range report.Daily {
		row := i + 2
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("A%d", row), d.Date.String())
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("B%d", row), d.TotalOrders)
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("C%d", row), d.TotalSales.InexactFloat64())
	}

	_ = f.SetCellValue(categorySheet, "A1", "Category")
	_ = f.SetCellValue(categorySheet, "B1", "Sales")
	for i, c := range report.ByCategory {
		row := i + 2
		_ = f.SetCellValue(categorySheet, fmt.Sprintf("A%d", row), c.Name)
		_ = f.SetCellValue(categorySheet, fmt.Sprintf("B%d", row), c.TotalSales.InexactFloat64())
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
