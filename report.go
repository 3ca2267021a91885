package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type letterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

type jsonReport struct {
	Path    string        `json:"path"`
	Total   int           `json:"total"`
	Letters []letterCount `json:"letters"`
}

func writeReport(w io.Writer, format, path string, t *Tally) error {
	switch format {
	case formatText:
		return writeText(w, t)
	case formatJSON:
		return writeJSON(w, path, t)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// writeText prints one "<letter> <count>" line per entry.
func writeText(w io.Writer, t *Tally) error {
	bw := bufio.NewWriter(w)
	for _, e := range t.Entries() {
		if _, err := fmt.Fprintf(bw, "%c %d\n", e.Letter, e.Count); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeJSON(w io.Writer, path string, t *Tally) error {
	entries := t.Entries()
	rep := jsonReport{
		Path:    path,
		Total:   t.Total(),
		Letters: make([]letterCount, 0, len(entries)),
	}
	for _, e := range entries {
		rep.Letters = append(rep.Letters, letterCount{Letter: string(e.Letter), Count: e.Count})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
