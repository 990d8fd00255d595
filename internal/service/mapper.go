package service

import (
	exportDomain "hufschlaeger.net/todo-csv-exporter/internal/domain/export"
	todoDomain "hufschlaeger.net/todo-csv-exporter/internal/domain/todo"
	"hufschlaeger.net/todo-csv-exporter/pkg/utils"
)

type Mapper struct {
	username string
}

func NewMapper(username string) *Mapper {
	return &Mapper{username: username}
}

// TaskToRow konvertiert einen Task zu einer CSV-Zeile
func (m *Mapper) TaskToRow(userID int, task todoDomain.Task) exportDomain.Row {
	return exportDomain.Row{
		UserID:              userID,
		Username:            m.username,
		TaskCompletedStatus: utils.FormatStatus(task.Completed),
		TaskTitle:           task.Title,
	}
}

// TasksToRows behält die Reihenfolge der Tasks bei, es wird nichts gefiltert.
func (m *Mapper) TasksToRows(userID int, tasks []todoDomain.Task) []exportDomain.Row {
	rows := make([]exportDomain.Row, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, m.TaskToRow(userID, task))
	}
	return rows
}
