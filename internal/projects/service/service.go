package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/hasthiya-it/tracker-backend/internal/projects"
)

// datePattern is a lexical check only. Values like "2024-13-40" pass;
// tightening this to real calendar validation would be a behavior change.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Repository is the persistence surface the service needs.
type Repository interface {
	List(ctx context.Context) ([]projects.Project, error)
	Get(ctx context.Context, id int64) (*projects.Project, error)
	Create(ctx context.Context, np projects.NewProject) (*projects.Project, error)
	Update(ctx context.Context, id int64, patch projects.Patch) (*projects.Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service validates project input and drives the repository.
type Service struct {
	repo Repository
}

func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput is the payload for a create request. Description and
// Status are optional.
type CreateInput struct {
	Name        string
	Description *string
	Status      *string
	DueDate     string
}

// UpdateInput is the payload for a partial update. Nil fields were not
// supplied. An empty Description clears the stored value.
type UpdateInput struct {
	Name        *string
	Description *string
	Status      *string
	DueDate     *string
}

func (s *Service) List(ctx context.Context) ([]projects.Project, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*projects.Project, error) {
	return s.repo.Get(ctx, id)
}

// Create validates in a fixed order (name, then due date presence, then
// due date format) and persists the project. Status defaults to Pending.
func (s *Service) Create(ctx context.Context, in CreateInput) (*projects.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, projects.NewValidationError("Project name is required")
	}
	if in.DueDate == "" {
		return nil, projects.NewValidationError("Due date is required")
	}
	if !datePattern.MatchString(in.DueDate) {
		return nil, projects.NewValidationError("Invalid date format. Use YYYY-MM-DD")
	}

	status := projects.StatusPending
	if in.Status != nil && *in.Status != "" {
		status = projects.Status(*in.Status)
		if !status.Valid() {
			return nil, projects.NewValidationError("Invalid status value")
		}
	}

	desc := in.Description
	if desc != nil && *desc == "" {
		desc = nil
	}

	return s.repo.Create(ctx, projects.NewProject{
		Name:        name,
		Description: desc,
		Status:      status,
		DueDate:     in.DueDate,
	})
}

// Update merges only the supplied fields into the project identified by
// id. Existence is checked before any field validation.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*projects.Project, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	var patch projects.Patch

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, projects.NewValidationError("Project name cannot be empty")
		}
		patch.Name = &name
	}
	if in.Description != nil {
		patch.Description = in.Description
	}
	if in.Status != nil {
		status := projects.Status(*in.Status)
		if !status.Valid() {
			return nil, projects.NewValidationError("Invalid status value")
		}
		patch.Status = &status
	}
	if in.DueDate != nil {
		if !datePattern.MatchString(*in.DueDate) {
			return nil, projects.NewValidationError("Invalid date format. Use YYYY-MM-DD")
		}
		patch.DueDate = in.DueDate
	}

	if patch.Empty() {
		return nil, projects.NewValidationError("No fields to update")
	}

	return s.repo.Update(ctx, id, patch)
}

// Delete removes the project, reporting projects.ErrNotFound when the id
// does not resolve.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return projects.ErrNotFound
	}
	return nil
}
