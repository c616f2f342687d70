package request

// ContactRequest represents a website contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message" binding:"required"`
}

// CreateCategoryRequest represents a component category create
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}
