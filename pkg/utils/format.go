package utils

import (
	"path/filepath"
	"strconv"
)

// FormatStatus rendert den Erledigt-Status als "True" bzw. "False"
func FormatStatus(completed bool) string {
	if completed {
		return "True"
	}
	return "False"
}

// OutputFilename baut den Dateinamen <userID>.csv im Verzeichnis dir.
func OutputFilename(dir string, userID int) string {
	name := strconv.Itoa(userID) + ".csv"
	if dir == "" || dir == "." {
		return name
	}
	return filepath.Join(dir, name)
}
