package service

import (
	"context"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
	"github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/aziyanck/ita-backoffice/pkg/apperror"
	"github.com/aziyanck/ita-backoffice/pkg/finance"
	"github.com/aziyanck/ita-backoffice/pkg/pagination"
	"github.com/google/uuid"
)

// ProjectService handles project operations
type ProjectService struct {
	projectRepo repository.ProjectRepository
	clientRepo  repository.ClientRepository
	txManager   repository.TxManager
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repository.ProjectRepository,
	clientRepo repository.ClientRepository,
	txManager repository.TxManager,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
		txManager:   txManager,
	}
}

// ProjectRowInput is one project row in a batch create
type ProjectRowInput struct {
	ClientName       string
	ClientPhone      string
	ProjectName      string
	Location         string
	ProjectDate      *time.Time
	InvoiceNo        string
	FinalValue       float64
	MaterialExpenses float64
	LabourCost       float64
	TACost           float64
}

// CreateBatch inserts a batch of projects under a shared status,
// looking up or creating each row's client by phone. The whole batch
// runs in one transaction.
func (s *ProjectService) CreateBatch(ctx context.Context, rows []ProjectRowInput, status enum.ProjectStatus) ([]entity.Project, error) {
	if len(rows) == 0 {
		return nil, apperror.NewBadRequestError("At least one project row is required")
	}
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Status must be Upcoming, Ongoing or Completed")
	}

	var created []entity.Project
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		projects := make([]entity.Project, 0, len(rows))
		for _, row := range rows {
			if row.ClientPhone == "" {
				return apperror.NewBadRequestError("Client phone is required")
			}

			client, err := s.resolveClient(ctx, row.ClientName, row.ClientPhone)
			if err != nil {
				return err
			}

			projects = append(projects, entity.Project{
				ClientID:    client.ID,
				ProjectName: row.ProjectName,
				Location:    row.Location,
				ProjectDate: row.ProjectDate,
				InvoiceNo:   row.InvoiceNo,
				// The quoted value mirrors the final value on entry
				QuotedValue:      row.FinalValue,
				FinalValue:       row.FinalValue,
				MaterialExpenses: row.MaterialExpenses,
				LabourCost:       row.LabourCost,
				TACost:           row.TACost,
				Profit:           finance.ProjectProfit(row.FinalValue, row.MaterialExpenses, row.LabourCost, row.TACost),
				Status:           status,
			})
		}

		if err := s.projectRepo.CreateBatch(ctx, projects); err != nil {
			return err
		}
		created = projects
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ProjectService) resolveClient(ctx context.Context, name, phone string) (*entity.Client, error) {
	client, err := s.clientRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if client != nil {
		return client, nil
	}

	client = &entity.Client{Name: name, Phone: phone}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// UpdateProjectInput carries the editable project fields
type UpdateProjectInput struct {
	ProjectName      *string
	Location         *string
	ProjectDate      *time.Time
	InvoiceNo        *string
	FinalValue       *float64
	MaterialExpenses *float64
	LabourCost       *float64
	TACost           *float64
	Status           *enum.ProjectStatus
}

// Update edits a project and re-derives its profit from the stored
// financial fields, so the persisted profit can never go stale.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, input *UpdateProjectInput) (*entity.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NewNotFoundError("Project")
	}

	if input.ProjectName != nil {
		project.ProjectName = *input.ProjectName
	}
	if input.Location != nil {
		project.Location = *input.Location
	}
	if input.ProjectDate != nil {
		project.ProjectDate = input.ProjectDate
	}
	if input.InvoiceNo != nil {
		project.InvoiceNo = *input.InvoiceNo
	}
	if input.FinalValue != nil {
		project.FinalValue = *input.FinalValue
		project.QuotedValue = *input.FinalValue
	}
	if input.MaterialExpenses != nil {
		project.MaterialExpenses = *input.MaterialExpenses
	}
	if input.LabourCost != nil {
		project.LabourCost = *input.LabourCost
	}
	if input.TACost != nil {
		project.TACost = *input.TACost
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Status must be Upcoming, Ongoing or Completed")
		}
		project.Status = *input.Status
	}

	project.Profit = finance.ProjectProfit(project.FinalValue, project.MaterialExpenses, project.LabourCost, project.TACost)

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return apperror.NewNotFoundError("Project")
	}
	return s.projectRepo.Delete(ctx, id)
}

// Get returns a single project with its client
func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NewNotFoundError("Project")
	}
	return project, nil
}

// List returns one page of projects with clients preloaded, filtered
// by status and date range when given
func (s *ProjectService) List(ctx context.Context, params *repository.ProjectFilterParams, page *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Project], error) {
	if page == nil {
		page = pagination.DefaultPagination()
	}
	projects, total, err := s.projectRepo.ListPage(ctx, params, page)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(page.Page, page.PerPage, total)
	return pagination.NewPaginatedResult(projects, pag), nil
}
