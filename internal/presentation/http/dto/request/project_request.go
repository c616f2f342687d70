package request

// ProjectRowRequest is one row in a batch project create. Dates arrive
// as YYYY-MM-DD strings.
type ProjectRowRequest struct {
	ClientName       string  `json:"client_name" binding:"required"`
	ClientPhone      string  `json:"client_phone" binding:"required"`
	ProjectName      string  `json:"project_name" binding:"required"`
	Location         string  `json:"location"`
	ProjectDate      string  `json:"project_date"`
	InvoiceNo        string  `json:"invoice_no"`
	FinalValue       float64 `json:"final_value" binding:"gte=0"`
	MaterialExpenses float64 `json:"material_expenses" binding:"gte=0"`
	LabourCost       float64 `json:"labour_cost" binding:"gte=0"`
	TACost           float64 `json:"ta_cost" binding:"gte=0"`
}

// CreateProjectsRequest represents a batch project create under one
// shared status
type CreateProjectsRequest struct {
	Status   string              `json:"status" binding:"required,oneof=Upcoming Ongoing Completed"`
	Projects []ProjectRowRequest `json:"projects" binding:"required,min=1,dive"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	ProjectName      *string  `json:"project_name,omitempty"`
	Location         *string  `json:"location,omitempty"`
	ProjectDate      *string  `json:"project_date,omitempty"`
	InvoiceNo        *string  `json:"invoice_no,omitempty"`
	FinalValue       *float64 `json:"final_value,omitempty"`
	MaterialExpenses *float64 `json:"material_expenses,omitempty"`
	LabourCost       *float64 `json:"labour_cost,omitempty"`
	TACost           *float64 `json:"ta_cost,omitempty"`
	Status           *string  `json:"status,omitempty"`
}
