package mapping

import (
	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/SscSPs/cashclaim/internal/models"
)

func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ID:          d.ProjectID,
		UserID:      d.UserName,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:   m.ID,
		UserName:    m.UserID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}
