package model

import "todo-api/internal/domain/entity"

// CreateTodoDTO is the body accepted when creating a todo. Both fields must be present.
type CreateTodoDTO struct {
	Title     *string `json:"title" validate:"required"`
	Completed *bool   `json:"completed" validate:"required"`
}

// UpdateTodoDTO is the body accepted when updating a todo. Omitted fields keep their stored value.
type UpdateTodoDTO struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// TodoResponse is the todo shape returned by the API.
type TodoResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type DeleteTodoResponse struct {
	OK bool `json:"ok"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// ToEntity maps the create body to a new, not yet persisted todo.
func (dto CreateTodoDTO) ToEntity() entity.Todo {
	todo := entity.Todo{}
	if dto.Title != nil {
		todo.Title = *dto.Title
	}
	if dto.Completed != nil {
		todo.Completed = *dto.Completed
	}
	return todo
}

// ApplyTo returns existing with the fields present in the update body overwritten.
func (dto UpdateTodoDTO) ApplyTo(existing entity.Todo) entity.Todo {
	if dto.Title != nil {
		existing.Title = *dto.Title
	}
	if dto.Completed != nil {
		existing.Completed = *dto.Completed
	}
	return existing
}

func NewTodoResponse(todo entity.Todo) TodoResponse {
	return TodoResponse{ID: todo.ID, Title: todo.Title, Completed: todo.Completed}
}

func NewTodoResponses(todos []entity.Todo) []TodoResponse {
	responses := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		responses = append(responses, NewTodoResponse(todo))
	}
	return responses
}
