package export

import "strconv"

// Header ist die feste Kopfzeile der CSV-Datei.
var Header = []string{"USER_ID", "USERNAME", "TASK_COMPLETED_STATUS", "TASK_TITLE"}

type Row struct {
	UserID              int
	Username            string
	TaskCompletedStatus string
	TaskTitle           string
}

// Record liefert die Zeile in Header-Reihenfolge.
func (r Row) Record() []string {
	return []string{
		strconv.Itoa(r.UserID),
		r.Username,
		r.TaskCompletedStatus,
		r.TaskTitle,
	}
}
