package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hufschlaeger.net/todo-csv-exporter/internal/config"
)

var (
	// ErrUsage: es wurde nicht genau ein USER_ID übergeben.
	ErrUsage = errors.New("wrong number of arguments")
	// ErrInvalidUserID: USER_ID ist keine Ganzzahl.
	ErrInvalidUserID = errors.New("USER_ID must be an integer.")
)

// UsageLine liefert die Kurzbeschreibung des Aufrufs.
func UsageLine(program string) string {
	return fmt.Sprintf("Usage: %s <USER_ID>", program)
}

// ParseArgs liest genau ein positionales Argument als USER_ID. Alle weiteren
// Einstellungen kommen aus der Umgebung bzw. der .env Datei, damit jedes
// Argument (auch "-5" oder "-h") als USER_ID gewertet wird.
func ParseArgs(args []string) (*config.Config, int, error) {
	if len(args) != 1 {
		return nil, 0, ErrUsage
	}

	userID, err := ParseUserID(args[0])
	if err != nil {
		return nil, 0, err
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, 0, err
	}

	return cfg, userID, nil
}

// ParseUserID akzeptiert Ganzzahlen mit optionalem Vorzeichen und umgebenden Leerzeichen.
func ParseUserID(raw string) (int, error) {
	userID, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidUserID
	}
	return userID, nil
}
