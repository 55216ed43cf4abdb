package catalog

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/iancoleman/strcase"
	"github.com/tidwall/sjson"
)

// ExportCourses writes courses to path. The file only appears at path once
// it has been completely written and synced; on any failure the partial
// output is removed and an existing file at path is left untouched.
func ExportCourses(path string, format string, courses []Course) error {
	pending, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(0o644),
	)
	if err != nil {
		return fmt.Errorf("failed to create output file %w: %w", ErrExportIO, err)
	}
	defer pending.Cleanup()

	if err = WriteCourses(pending, format, courses); err != nil {
		return fmt.Errorf("failed to write %s %w: %w", path, ErrExportIO, err)
	}
	if err = pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to move output into place %w: %w", ErrExportIO, err)
	}
	return nil
}

// WriteCourses writes one record per course, in input order, to w.
func WriteCourses(w io.Writer, format string, courses []Course) error {
	switch format {
	case FormatCSV, "":
		return writeDelimited(w, ',', courses)
	case FormatTSV:
		return writeDelimited(w, '\t', courses)
	case FormatJSONL:
		return writeJSONLines(w, courses)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeDelimited(w io.Writer, comma rune, courses []Course) error {
	writer := csv.NewWriter(w)
	writer.Comma = comma

	if err := writer.Write(Headers()); err != nil {
		return err
	}
	for _, course := range courses {
		if err := writer.Write(Row(course)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// writeJSONLines writes one object per course keyed by the snake_case
// header. Present numbers and booleans are JSON literals; strings and
// absent values are JSON strings, absent ones empty.
func writeJSONLines(w io.Writer, courses []Course) error {
	keys := make([]string, len(Columns))
	for i, c := range Columns {
		keys[i] = strcase.ToSnake(c.Header)
	}

	buf := bufio.NewWriter(w)
	for _, course := range courses {
		line := "{}"
		var err error
		for i, c := range Columns {
			cell := c.Cell(course)
			if c.Kind != String && cell != "" {
				line, err = sjson.SetRaw(line, keys[i], cell)
			} else {
				line, err = sjson.Set(line, keys[i], cell)
			}
			if err != nil {
				return fmt.Errorf("failed to set %s %w", keys[i], err)
			}
		}
		if _, err = buf.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return buf.Flush()
}
