package model

import "github.com/google/uuid"

// Todo is the model entity for the Todo schema.
type Todo struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	IsCompleted bool      `json:"isCompleted"`
}

// CreateTodoInput represents a mutation input for creating todos.
type CreateTodoInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	// IsCompleted defaults to false when omitted.
	IsCompleted *bool `json:"isCompleted,omitempty"`
}

// UpdateTodoInput represents a mutation input for updating todos.
// Every mutable field is replaced.
type UpdateTodoInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	IsCompleted bool   `json:"isCompleted"`
}

// Statuses seen in stored data. Status is free text and is not checked against these.
const (
	TodoStatusPending   = "Pending"
	TodoStatusCompleted = "Completed"
)
