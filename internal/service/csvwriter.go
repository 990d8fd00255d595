package service

import (
	"bytes"
	"encoding/csv"
	"io"
)

// recordWriter schreibt CSV-Records mit "\r\n" als Zeilenende. Zeilenumbrüche
// innerhalb eines Feldes bleiben unverändert, anders als bei csv.Writer.UseCRLF.
type recordWriter struct {
	out io.Writer
	buf bytes.Buffer
	csv *csv.Writer
}

func newRecordWriter(out io.Writer) *recordWriter {
	rw := &recordWriter{out: out}
	rw.csv = csv.NewWriter(&rw.buf)
	return rw
}

func (rw *recordWriter) Write(record []string) error {
	rw.buf.Reset()
	if err := rw.csv.Write(record); err != nil {
		return err
	}
	rw.csv.Flush()
	if err := rw.csv.Error(); err != nil {
		return err
	}

	line := bytes.TrimSuffix(rw.buf.Bytes(), []byte("\n"))
	if _, err := rw.out.Write(line); err != nil {
		return err
	}
	_, err := io.WriteString(rw.out, "\r\n")
	return err
}
