package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hasthiya-it/tracker-backend/internal/projects"
)

// Repo provides persistence for the projects relation.
type Repo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const projectColumns = "id, name, description, status, due_date, created_at"

func scanProject(row pgx.Row) (*projects.Project, error) {
	var p projects.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.DueDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, projects.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns every project, most recently created first.
func (r *Repo) List(ctx context.Context) ([]projects.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
order by created_at desc, id desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]projects.Project, 0, 16)
	for rows.Next() {
		var p projects.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.DueDate, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get returns the project with the given id, or projects.ErrNotFound.
func (r *Repo) Get(ctx context.Context, id int64) (*projects.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
where id = $1;
`
	return scanProject(r.db.QueryRow(ctx, q, id))
}

// Create inserts a new project and returns the stored row, including the
// assigned id and created_at.
func (r *Repo) Create(ctx context.Context, np projects.NewProject) (*projects.Project, error) {
	const q = `
insert into projects (name, description, status, due_date)
values ($1, $2, $3, $4)
returning ` + projectColumns + `;
`
	return scanProject(r.db.QueryRow(ctx, q, np.Name, np.Description, np.Status, np.DueDate))
}

// Update applies the supplied fields only, building the SET clause from
// whatever the patch carries, and returns the full updated row.
func (r *Repo) Update(ctx context.Context, id int64, patch projects.Patch) (*projects.Project, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		// Empty descriptions are stored as NULL, not empty strings.
		if *patch.Description == "" {
			add("description", nil)
		} else {
			add("description", *patch.Description)
		}
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.DueDate != nil {
		add("due_date", *patch.DueDate)
	}
	if len(sets) == 0 {
		return nil, projects.NewValidationError("No fields to update")
	}

	args = append(args, id)
	q := fmt.Sprintf(
		"update projects set %s where id = $%d returning %s;",
		strings.Join(sets, ", "), len(args), projectColumns,
	)
	return scanProject(r.db.QueryRow(ctx, q, args...))
}

// Delete removes the project with the given id. It reports false when no
// row matched.
func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `delete from projects where id = $1;`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
