package service

import (
	"context"
	"fmt"

	"github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

// projectExportHeaders are the column headers of the projects workbook
var projectExportHeaders = []string{
	"Sl No", "Project Name", "Client Name", "Contact", "Location",
	"Project Date", "Invoice No", "Quoted Value", "Final Value",
	"Material Expenses", "Labour Cost", "TA Cost", "Status", "Profit",
}

// ExportService renders xlsx workbooks for download
type ExportService struct {
	projectRepo repository.ProjectRepository
	dashboard   *DashboardService
}

// NewExportService creates a new export service
func NewExportService(projectRepo repository.ProjectRepository, dashboard *DashboardService) *ExportService {
	return &ExportService{
		projectRepo: projectRepo,
		dashboard:   dashboard,
	}
}

// ExportProjects builds a workbook with one row per project matching
// the filter
func (s *ExportService) ExportProjects(ctx context.Context, params *repository.ProjectFilterParams) (*excelize.File, error) {
	projects, err := s.projectRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Projects"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range projectExportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, project := range projects {
		date := ""
		if project.ProjectDate != nil {
			date = project.ProjectDate.Format("2006-01-02")
		}
		row := []interface{}{
			i + 1,
			project.ProjectName,
			project.Client.Name,
			project.Client.Phone,
			project.Location,
			date,
			project.InvoiceNo,
			project.QuotedValue,
			project.FinalValue,
			project.MaterialExpenses,
			project.LabourCost,
			project.TACost,
			project.Status.String(),
			project.Profit,
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// ExportFYProfit builds a monthly profit workbook for the financial
// year beginning April of startYear
func (s *ExportService) ExportFYProfit(ctx context.Context, startYear int) (*excelize.File, error) {
	points, err := s.dashboard.GetFYMonthlySeries(ctx, startYear)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := fmt.Sprintf("FY %d-%d", startYear, startYear+1)
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Sl No", "Month", "Profit"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, point := range points {
		row := []interface{}{i + 1, point.Month, point.Profit}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
