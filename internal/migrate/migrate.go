package migrate

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// due_date is stored as text on purpose: the API validates the value
// lexically (YYYY-MM-DD shape only) and must persist it verbatim, which
// a DATE column would reject or normalize.
const schema = `
create table if not exists projects (
	id bigserial primary key,
	name text not null,
	description text,
	status text not null default 'Pending'
		check (status in ('Pending', 'In Progress', 'Completed')),
	due_date text not null,
	created_at timestamptz not null default now()
);
`

// Run applies the schema. It is idempotent and safe to call on every boot.
func Run(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Println("database schema is ready")
	return nil
}
