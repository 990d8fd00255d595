package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"hufschlaeger.net/todo-csv-exporter/internal/config"
	exportDomain "hufschlaeger.net/todo-csv-exporter/internal/domain/export"
	todoDomain "hufschlaeger.net/todo-csv-exporter/internal/domain/todo"
	"hufschlaeger.net/todo-csv-exporter/internal/repository/graphqlzero"
	"hufschlaeger.net/todo-csv-exporter/internal/repository/placeholder"
	"hufschlaeger.net/todo-csv-exporter/pkg/utils"
)

// TaskSource liefert die Tasks und den Username eines Users.
type TaskSource interface {
	GetUserTasks(ctx context.Context, userID int) ([]todoDomain.Task, error)
	GetUsername(ctx context.Context, userID int) (string, error)
}

type Exporter struct {
	config *config.Config
	source TaskSource
	out    io.Writer
	log    *logrus.Logger
}

func NewExporter(cfg *config.Config, out io.Writer, log *logrus.Logger) *Exporter {
	return NewExporterWithSource(cfg, newTaskSource(cfg), out, log)
}

func NewExporterWithSource(cfg *config.Config, source TaskSource, out io.Writer, log *logrus.Logger) *Exporter {
	return &Exporter{
		config: cfg,
		source: source,
		out:    out,
		log:    log,
	}
}

func newTaskSource(cfg *config.Config) TaskSource {
	if cfg.Source == config.SourceGraphQL {
		return graphqlzero.NewRepository(cfg)
	}
	return placeholder.NewRepository(cfg)
}

// Export startet den Export: laden, schreiben, bestätigen.
func (e *Exporter) Export(ctx context.Context, userID int) error {
	if err := e.config.Validate(); err != nil {
		return fmt.Errorf("konfiguration ungültig: %w", err)
	}

	tasks, err := e.Fetch(ctx, userID)
	if err != nil {
		return fmt.Errorf("fehler beim Laden der Tasks: %w", err)
	}

	username, err := e.username(ctx, userID)
	if err != nil {
		return fmt.Errorf("fehler beim Ermitteln des Usernames: %w", err)
	}

	filename := utils.OutputFilename(e.config.OutputDir, userID)
	rows := NewMapper(username).TasksToRows(userID, tasks)

	if err := WriteCSV(filename, rows); err != nil {
		return err
	}
	e.log.WithFields(logrus.Fields{"file": filename, "rows": len(rows)}).Debug("CSV geschrieben")

	if e.config.ShowProgress {
		if err := WriteProgress(e.out, username, tasks); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(e.out, "Data exported to %s\n", filename)
	return err
}

// Fetch lädt die Tasks genau so, wie der Dienst sie liefert.
func (e *Exporter) Fetch(ctx context.Context, userID int) ([]todoDomain.Task, error) {
	e.log.WithFields(logrus.Fields{"user_id": userID, "source": e.config.Source}).Debug("Lade Tasks")

	tasks, err := e.source.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	e.log.WithField("count", len(tasks)).Debug("Tasks geladen")
	return tasks, nil
}

func (e *Exporter) username(ctx context.Context, userID int) (string, error) {
	if !e.config.ResolveUsername {
		return e.config.Username, nil
	}

	name, err := e.source.GetUsername(ctx, userID)
	if err != nil {
		return "", err
	}
	e.log.WithField("username", name).Debug("Username aufgelöst")
	return name, nil
}

// WriteCSV legt filename neu an (bzw. überschreibt sie) und schreibt Header plus Zeilen.
func WriteCSV(filename string, rows []exportDomain.Row) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("fehler beim Erstellen der Datei: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("fehler beim Schliessen der Datei: %w", cerr)
		}
	}()

	buffered := bufio.NewWriter(file)
	writer := newRecordWriter(buffered)

	if err := writer.Write(exportDomain.Header); err != nil {
		return fmt.Errorf("fehler beim Schreiben des Headers: %w", err)
	}

	for i, row := range rows {
		if err := writer.Write(row.Record()); err != nil {
			return fmt.Errorf("fehler beim Schreiben der Zeile %d: %w", i+1, err)
		}
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("fehler beim Schreiben der Datei: %w", err)
	}
	return nil
}
