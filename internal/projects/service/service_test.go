package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasthiya-it/tracker-backend/internal/projects"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	rows   map[int64]projects.Project
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[int64]projects.Project{}, nextID: 1}
}

func (f *fakeRepo) List(ctx context.Context) ([]projects.Project, error) {
	out := make([]projects.Project, 0, len(f.rows))
	for _, p := range f.rows {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) Get(ctx context.Context, id int64) (*projects.Project, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, projects.ErrNotFound
	}
	return &p, nil
}

func (f *fakeRepo) Create(ctx context.Context, np projects.NewProject) (*projects.Project, error) {
	p := projects.Project{
		ID:          f.nextID,
		Name:        np.Name,
		Description: np.Description,
		Status:      np.Status,
		DueDate:     np.DueDate,
		CreatedAt:   time.Now().UTC(),
	}
	f.rows[p.ID] = p
	f.nextID++
	return &p, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, patch projects.Patch) (*projects.Project, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, projects.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			p.Description = nil
		} else {
			v := *patch.Description
			p.Description = &v
		}
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.DueDate != nil {
		p.DueDate = *patch.DueDate
	}
	f.rows[id] = p
	return &p, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("trims name and defaults status", func(t *testing.T) {
		svc := New(newFakeRepo())

		p, err := svc.Create(ctx, CreateInput{Name: "  Launch  ", DueDate: "2099-01-01"})
		require.NoError(t, err)
		assert.Equal(t, "Launch", p.Name)
		assert.Equal(t, projects.StatusPending, p.Status)
		assert.Nil(t, p.Description)
		assert.Equal(t, "2099-01-01", p.DueDate)
		assert.NotZero(t, p.ID)
	})

	t.Run("keeps supplied status and description", func(t *testing.T) {
		svc := New(newFakeRepo())

		p, err := svc.Create(ctx, CreateInput{
			Name:        "Launch",
			Description: strPtr("rocket work"),
			Status:      strPtr("In Progress"),
			DueDate:     "2099-01-01",
		})
		require.NoError(t, err)
		assert.Equal(t, projects.StatusInProgress, p.Status)
		require.NotNil(t, p.Description)
		assert.Equal(t, "rocket work", *p.Description)
	})

	t.Run("empty description becomes absent", func(t *testing.T) {
		svc := New(newFakeRepo())

		p, err := svc.Create(ctx, CreateInput{Name: "Launch", Description: strPtr(""), DueDate: "2099-01-01"})
		require.NoError(t, err)
		assert.Nil(t, p.Description)
	})

	t.Run("rejects blank name first", func(t *testing.T) {
		svc := New(newFakeRepo())

		_, err := svc.Create(ctx, CreateInput{Name: "   "})
		require.Error(t, err)
		assert.True(t, projects.IsValidation(err))
		assert.Equal(t, "Project name is required", err.Error())
	})

	t.Run("rejects missing due date before checking its format", func(t *testing.T) {
		svc := New(newFakeRepo())

		_, err := svc.Create(ctx, CreateInput{Name: "Launch"})
		require.Error(t, err)
		assert.Equal(t, "Due date is required", err.Error())
	})

	t.Run("rejects malformed due date", func(t *testing.T) {
		svc := New(newFakeRepo())

		_, err := svc.Create(ctx, CreateInput{Name: "Launch", DueDate: "2024/01/01"})
		require.Error(t, err)
		assert.True(t, projects.IsValidation(err))
		assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", err.Error())
	})

	t.Run("date check is lexical only", func(t *testing.T) {
		svc := New(newFakeRepo())

		p, err := svc.Create(ctx, CreateInput{Name: "Launch", DueDate: "2024-13-40"})
		require.NoError(t, err)
		assert.Equal(t, "2024-13-40", p.DueDate)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		svc := New(newFakeRepo())

		_, err := svc.Create(ctx, CreateInput{Name: "Launch", Status: strPtr("Done"), DueDate: "2099-01-01"})
		require.Error(t, err)
		assert.True(t, projects.IsValidation(err))
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*Service, *projects.Project) {
		t.Helper()
		svc := New(newFakeRepo())
		p, err := svc.Create(ctx, CreateInput{
			Name:        "Launch",
			Description: strPtr("rocket work"),
			DueDate:     "2099-01-01",
		})
		require.NoError(t, err)
		return svc, p
	}

	t.Run("missing id yields not found regardless of payload", func(t *testing.T) {
		svc := New(newFakeRepo())

		_, err := svc.Update(ctx, 42, UpdateInput{Name: strPtr("")})
		assert.ErrorIs(t, err, projects.ErrNotFound)
	})

	t.Run("empty payload yields validation error and changes nothing", func(t *testing.T) {
		svc, p := seed(t)

		_, err := svc.Update(ctx, p.ID, UpdateInput{})
		require.Error(t, err)
		assert.True(t, projects.IsValidation(err))
		assert.Equal(t, "No fields to update", err.Error())

		got, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, *p, *got)
	})

	t.Run("status-only update changes exactly status", func(t *testing.T) {
		svc, p := seed(t)

		got, err := svc.Update(ctx, p.ID, UpdateInput{Status: strPtr("Completed")})
		require.NoError(t, err)
		assert.Equal(t, projects.StatusCompleted, got.Status)
		assert.Equal(t, p.Name, got.Name)
		assert.Equal(t, p.DueDate, got.DueDate)
		require.NotNil(t, got.Description)
		assert.Equal(t, *p.Description, *got.Description)
	})

	t.Run("name is trimmed and must stay non-empty", func(t *testing.T) {
		svc, p := seed(t)

		got, err := svc.Update(ctx, p.ID, UpdateInput{Name: strPtr("  Relaunch  ")})
		require.NoError(t, err)
		assert.Equal(t, "Relaunch", got.Name)

		_, err = svc.Update(ctx, p.ID, UpdateInput{Name: strPtr("   ")})
		require.Error(t, err)
		assert.Equal(t, "Project name cannot be empty", err.Error())
	})

	t.Run("empty description clears the stored value", func(t *testing.T) {
		svc, p := seed(t)

		got, err := svc.Update(ctx, p.ID, UpdateInput{Description: strPtr("")})
		require.NoError(t, err)
		assert.Nil(t, got.Description)
	})

	t.Run("malformed due date is rejected", func(t *testing.T) {
		svc, p := seed(t)

		_, err := svc.Update(ctx, p.ID, UpdateInput{DueDate: strPtr("01-01-2099")})
		require.Error(t, err)
		assert.True(t, projects.IsValidation(err))
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc, p := seed(t)

		_, err := svc.Update(ctx, p.ID, UpdateInput{Status: strPtr("Archived")})
		require.Error(t, err)
		assert.True(t, projects.IsValidation(err))
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("second delete of the same id yields not found", func(t *testing.T) {
		svc := New(newFakeRepo())
		p, err := svc.Create(ctx, CreateInput{Name: "Launch", DueDate: "2099-01-01"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, p.ID))
		assert.ErrorIs(t, svc.Delete(ctx, p.ID), projects.ErrNotFound)
	})
}
