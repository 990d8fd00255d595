package todo

// Task ist ein Eintrag aus /todos, so wie ihn der Dienst liefert.
type Task struct {
	UserID    int    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CountCompleted zählt die erledigten Tasks.
func CountCompleted(tasks []Task) int {
	done := 0
	for _, task := range tasks {
		if task.Completed {
			done++
		}
	}
	return done
}
