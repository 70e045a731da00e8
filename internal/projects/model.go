package projects

import "time"

// Project is the single tracked entity. Description is a pointer so the
// JSON form distinguishes an absent description (null) from a set one.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Status      Status    `json:"status"`
	DueDate     string    `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProject carries the validated values for an insert.
type NewProject struct {
	Name        string
	Description *string
	Status      Status
	DueDate     string
}

// Patch describes a partial update. A nil field is left untouched.
// An empty Description clears the stored value (persisted as NULL).
type Patch struct {
	Name        *string
	Description *string
	Status      *Status
	DueDate     *string
}

// Empty reports whether the patch touches no field.
func (p Patch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Status == nil && p.DueDate == nil
}
