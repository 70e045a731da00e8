package client

import (
	"context"
	"errors"
	"time"

	"github.com/hasthiya-it/tracker-backend/internal/projects"
)

// Phase is the dashboard's loading state.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseLoading    Phase = "loading"
	PhaseLoaded     Phase = "loaded"
	PhaseLoadFailed Phase = "load_failed"
	PhaseSubmitting Phase = "submitting"
)

// State is an immutable snapshot of the dashboard. The filtered view is
// always recomputed from it, never stored.
type State struct {
	Phase        Phase
	Projects     []projects.Project
	SearchText   string
	StatusFilter string
	EditingID    *int64
	Draft        Form
	Notice       string
}

// Stats summarizes the project set for the dashboard cards.
type Stats struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
}

// ConfirmFunc asks the user before a destructive action.
type ConfirmFunc func(prompt string) bool

// Dashboard owns the client-side state and routes user events to the API.
// It assumes a single active form at a time.
type Dashboard struct {
	api     *Client
	confirm ConfirmFunc
	now     func() time.Time
	state   State
}

func NewDashboard(api *Client, confirm ConfirmFunc) *Dashboard {
	return &Dashboard{
		api:     api,
		confirm: confirm,
		now:     time.Now,
		state: State{
			Phase:        PhaseIdle,
			StatusFilter: FilterAll,
		},
	}
}

// State returns the current snapshot.
func (d *Dashboard) State() State {
	return d.state
}

// View returns the filtered projection of the current project set.
func (d *Dashboard) View() []projects.Project {
	return ApplyFilter(d.state.Projects, d.state.SearchText, d.state.StatusFilter)
}

// ProjectStats counts projects per status over the full (unfiltered) set.
func (d *Dashboard) ProjectStats() Stats {
	s := Stats{Total: len(d.state.Projects)}
	for _, p := range d.state.Projects {
		switch p.Status {
		case projects.StatusPending:
			s.Pending++
		case projects.StatusInProgress:
			s.InProgress++
		case projects.StatusCompleted:
			s.Completed++
		}
	}
	return s
}

// Refresh replaces the project set from the server. On failure the prior
// set is left untouched and a notice is surfaced.
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.state.Phase = PhaseLoading
	list, err := d.api.List(ctx)
	if err != nil {
		d.state.Phase = PhaseLoadFailed
		d.state.Notice = "Failed to fetch projects"
		return err
	}
	d.state.Projects = list
	d.state.Phase = PhaseLoaded
	d.state.Notice = ""
	return nil
}

// SetSearch updates the search text; the view is derived on demand.
func (d *Dashboard) SetSearch(text string) {
	d.state.SearchText = text
}

// SetStatusFilter updates the status filter ("All" or one of the three
// statuses).
func (d *Dashboard) SetStatusFilter(status string) {
	d.state.StatusFilter = status
}

// StartCreate opens a blank draft.
func (d *Dashboard) StartCreate() {
	d.state.EditingID = nil
	d.state.Draft = Form{Status: string(projects.StatusPending)}
}

// StartEdit opens a draft pre-filled from an existing project.
func (d *Dashboard) StartEdit(p projects.Project) {
	id := p.ID
	d.state.EditingID = &id
	desc := ""
	if p.Description != nil {
		desc = *p.Description
	}
	d.state.Draft = Form{
		Name:        p.Name,
		Description: desc,
		Status:      string(p.Status),
		DueDate:     p.DueDate,
	}
}

// CloseForm discards the draft and editing target.
func (d *Dashboard) CloseForm() {
	d.state.EditingID = nil
	d.state.Draft = Form{}
}

// Submit validates the draft and routes it to Update when editing or
// Create otherwise. A success refreshes the list and clears the draft;
// a failure keeps prior state and surfaces the server's message.
func (d *Dashboard) Submit(ctx context.Context) (FieldErrors, error) {
	editing := d.state.EditingID != nil
	if errs := d.state.Draft.Validate(editing, d.now()); !errs.Ok() {
		return errs, nil
	}

	d.state.Phase = PhaseSubmitting
	var err error
	if editing {
		_, err = d.api.Update(ctx, *d.state.EditingID, d.updateRequest())
	} else {
		_, err = d.api.Create(ctx, d.createRequest())
	}
	if err != nil {
		d.state.Phase = PhaseLoaded
		d.state.Notice = submitNotice(err)
		return nil, err
	}

	d.CloseForm()
	if rerr := d.Refresh(ctx); rerr != nil {
		return nil, rerr
	}
	return nil, nil
}

// RequestDelete confirms with the user, then deletes and refreshes. A
// declined confirmation is a no-op.
func (d *Dashboard) RequestDelete(ctx context.Context, id int64) error {
	if d.confirm != nil && !d.confirm("Are you sure you want to delete this project?") {
		return nil
	}
	if err := d.api.Delete(ctx, id); err != nil {
		d.state.Notice = submitNotice(err)
		return err
	}
	return d.Refresh(ctx)
}

func (d *Dashboard) createRequest() CreateRequest {
	req := CreateRequest{
		Name:    d.state.Draft.Name,
		DueDate: d.state.Draft.DueDate,
	}
	if d.state.Draft.Status != "" {
		status := d.state.Draft.Status
		req.Status = &status
	}
	if desc := d.state.Draft.Description; desc != "" {
		req.Description = &desc
	}
	return req
}

func (d *Dashboard) updateRequest() UpdateRequest {
	name := d.state.Draft.Name
	status := d.state.Draft.Status
	dueDate := d.state.Draft.DueDate
	desc := d.state.Draft.Description
	return UpdateRequest{
		Name:        &name,
		Description: &desc,
		Status:      &status,
		DueDate:     &dueDate,
	}
}

func submitNotice(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallbackMessage
}
