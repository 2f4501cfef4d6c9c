package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Metadata
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Export writes a stored dataset and its samples as indented JSON.
func (s *Store) Export(w io.Writer, id string) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}
	x, y, err := s.LoadSamples(id)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Metadata: *meta, X: x, Y: y})
}

func (s *Store) ExportFile(path, id string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.Export(file, id)
}
