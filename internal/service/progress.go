package service

import (
	"fmt"
	"io"

	todoDomain "hufschlaeger.net/todo-csv-exporter/internal/domain/todo"
)

// WriteProgress gibt den Fortschritt aus:
//
//	Employee <NAME> is done with tasks(<DONE>/<TOTAL>):
//		 <TITLE>
func WriteProgress(w io.Writer, name string, tasks []todoDomain.Task) error {
	done := todoDomain.CountCompleted(tasks)
	if _, err := fmt.Fprintf(w, "Employee %s is done with tasks(%d/%d):\n", name, done, len(tasks)); err != nil {
		return err
	}
	for _, task := range tasks {
		if !task.Completed {
			continue
		}
		if _, err := fmt.Fprintf(w, "\t %s\n", task.Title); err != nil {
			return err
		}
	}
	return nil
}
