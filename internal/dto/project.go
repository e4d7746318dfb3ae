package dto

import (
	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/SscSPs/cashclaim/internal/utils/money"
)

// CreateProjectRequest creates a new sub-wallet for the caller.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// ListProjectsParams defines query parameters for listing projects.
type ListProjectsParams struct {
	User string `form:"user"`
}

type ProjectResponse struct {
	ProjectID   int64  `json:"projectID"`
	UserName    string `json:"userName"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Balance     int64  `json:"balance"`
	Formatted   string `json:"formatted"`
}

type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

func ToProjectResponse(p *domain.ProjectBalance) ProjectResponse {
	return ProjectResponse{
		ProjectID:   p.ProjectID,
		UserName:    p.UserName,
		Name:        p.Name,
		Description: p.Description,
		Balance:     p.Balance,
		Formatted:   money.FormatRupiah(p.Balance),
	}
}

func ToListProjectsResponse(projects []domain.ProjectBalance) ListProjectsResponse {
	resp := ListProjectsResponse{Projects: make([]ProjectResponse, len(projects))}
	for i := range projects {
		resp.Projects[i] = ToProjectResponse(&projects[i])
	}
	return resp
}
