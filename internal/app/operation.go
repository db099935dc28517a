package app

import "github.com/google/uuid"

// Operation tracks a single CLI invocation for the log.
type Operation struct {
	ID        string
	Name      string
	Parameter string
	Status    string // "success" or "error"
}

// NewOperation creates an operation with a short random ID and status "success".
func NewOperation(name, parameter string) *Operation {
	return &Operation{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Parameter: parameter,
		Status:    "success",
	}
}

// Fail marks the operation as failed.
func (op *Operation) Fail() {
	op.Status = "error"
}
