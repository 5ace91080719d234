package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/skillhorizon/marketplace-service/internal/repositories"
)

// reportService renders admin exports as xlsx workbooks.
type reportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewReportService(repo repositories.Repository, logger *slog.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

func (s *reportService) PaymentsReport(ctx context.Context) (*excelize.File, error) {
	paymentRows, err := s.repo.Payment().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Payments"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Student Email", "Class ID", "Amount", "Currency", "Transaction ID", "Created At"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, p := range paymentRows {
		row := i + 2
		values := []interface{}{
			p.ID,
			p.StudentEmail,
			p.ClassID,
			p.Amount,
			p.Currency,
			p.TransactionID,
			p.CreatedAt.Format(time.RFC3339),
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, err
		}
	}

	s.logger.Info("payments report generated", "rows", len(paymentRows))
	return f, nil
}

func (s *reportService) ClassesReport(ctx context.Context) (*excelize.File, error) {
	classes, err := s.repo.Class().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Classes"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Title", "Owner Email", "Price", "Status", "Created At"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, c := range classes {
		row := i + 2
		values := []interface{}{
			c.ID,
			c.Title,
			c.OwnerEmail,
			c.Price,
			string(c.Status),
			c.CreatedAt.Format(time.RFC3339),
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, err
		}
	}

	s.logger.Info("classes report generated", "rows", len(classes))
	return f, nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write cell: %w", err)
		}
	}
	return nil
}
