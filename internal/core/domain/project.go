package domain

import "time"

// DefaultProjectName is the sub-wallet every user owns and the default scope of new entries.
const DefaultProjectName = "Main"

// DefaultProjectDescription is stored on auto-created Main projects.
const DefaultProjectDescription = "Default Project"

// Project is a named sub-wallet. UserName stores the owner's name, not a numeric id.
type Project struct {
	ProjectID   int64     `json:"projectID"`
	UserName    string    `json:"userName"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectBalance pairs a project with its freshly computed balance.
type ProjectBalance struct {
	Project
	Balance int64 `json:"balance"`
}
