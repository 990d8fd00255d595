package placeholder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"hufschlaeger.net/todo-csv-exporter/internal/config"
	todoDomain "hufschlaeger.net/todo-csv-exporter/internal/domain/todo"
	"hufschlaeger.net/todo-csv-exporter/internal/repository"
)

type Repository struct {
	httpClient *http.Client
	baseURL    string
}

func NewRepository(cfg *config.Config) *Repository {
	return &Repository{
		httpClient: repository.NewHTTPClient(),
		baseURL:    cfg.GetAPIBaseURL(),
	}
}

// GetUserTasks holt alle Tasks eines Users mit einem einzigen GET /todos?userId=N.
// Die Reihenfolge der Antwort bleibt erhalten.
func (r *Repository) GetUserTasks(ctx context.Context, userID int) ([]todoDomain.Task, error) {
	url := fmt.Sprintf("%s/todos", r.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Add("userId", strconv.Itoa(userID))
	req.URL.RawQuery = q.Encode()

	var tasks []todoDomain.Task
	if err := r.getJSON(req, &tasks); err != nil {
		return nil, fmt.Errorf("get todos failed: %w", err)
	}
	return tasks, nil
}

// GetUser holt den User-Datensatz über GET /users/N.
func (r *Repository) GetUser(ctx context.Context, userID int) (*todoDomain.User, error) {
	url := fmt.Sprintf("%s/users/%d", r.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var user todoDomain.User
	if err := r.getJSON(req, &user); err != nil {
		return nil, fmt.Errorf("get user failed: %w", err)
	}
	return &user, nil
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

func (r *Repository) getJSON(req *http.Request, v interface{}) error {
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON response: %w", err)
	}
	return nil
}
