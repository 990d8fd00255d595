package graphqlzero

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hasura/go-graphql-client"

	"hufschlaeger.net/todo-csv-exporter/internal/config"
	todoDomain "hufschlaeger.net/todo-csv-exporter/internal/domain/todo"
	"hufschlaeger.net/todo-csv-exporter/internal/repository"
)

const userTodosQuery = `query UserTodos($id: ID!) {
  user(id: $id) {
    id
    username
    todos {
      data {
        id
        title
        completed
      }
    }
  }
}`

const userQuery = `query User($id: ID!) {
  user(id: $id) {
    id
    name
    username
    email
  }
}`

type todoNode struct {
	ID        string `graphql:"id"`
	Title     string `graphql:"title"`
	Completed bool   `graphql:"completed"`
}

type userNode struct {
	ID       string `graphql:"id"`
	Name     string `graphql:"name"`
	Username string `graphql:"username"`
	Email    string `graphql:"email"`
	Todos    struct {
		Data []todoNode `graphql:"data"`
	} `graphql:"todos"`
}

type userResponse struct {
	User userNode `graphql:"user"`
}

// Repository liest dieselben Daten über den GraphQL-Spiegel des Dienstes.
type Repository struct {
	client *graphql.Client
}

func NewRepository(cfg *config.Config) *Repository {
	return &Repository{
		client: graphql.NewClient(cfg.GraphQLURL, repository.NewHTTPClient()),
	}
}

// GetUserTasks holt die Tasks eines Users mit einer einzigen Query.
// Ein unbekannter User liefert eine leere Liste, wie /todos?userId=N.
func (r *Repository) GetUserTasks(ctx context.Context, userID int) ([]todoDomain.Task, error) {
	var resp userResponse
	if err := r.client.Exec(ctx, userTodosQuery, &resp, idVariables(userID)); err != nil {
		return nil, fmt.Errorf("GraphQL query fehler: %w", err)
	}

	tasks := make([]todoDomain.Task, 0, len(resp.User.Todos.Data))
	for _, node := range resp.User.Todos.Data {
		id, err := strconv.Atoi(node.ID)
		if err != nil {
			return nil, fmt.Errorf("ungültige Task-ID %q: %w", node.ID, err)
		}
		tasks = append(tasks, todoDomain.Task{
			UserID:    userID,
			ID:        id,
			Title:     node.Title,
			Completed: node.Completed,
		})
	}
	return tasks, nil
}

func (r *Repository) GetUser(ctx context.Context, userID int) (*todoDomain.User, error) {
	var resp userResponse
	if err := r.client.Exec(ctx, userQuery, &resp, idVariables(userID)); err != nil {
		return nil, fmt.Errorf("GraphQL query fehler: %w", err)
	}
	if resp.User.ID == "" {
		return nil, fmt.Errorf("user %d nicht gefunden", userID)
	}

	return &todoDomain.User{
		ID:       userID,
		Name:     resp.User.Name,
		Username: resp.User.Username,
		Email:    resp.User.Email,
	}, nil
}

func (r *Repository) GetUsername(ctx context.Context, userID int) (string, error) {
	user, err := r.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.Username == "" {
		return "", fmt.Errorf("user %d hat keinen Username", userID)
	}
	return user.Username, nil
}

func idVariables(userID int) map[string]interface{} {
	return map[string]interface{}{
		"id": strconv.Itoa(userID),
	}
}
