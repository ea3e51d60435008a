package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/corefield/internal/geom"
	"github.com/san-kum/corefield/internal/graph"
)

type ExportData struct {
	Metadata *Metadata    `json:"metadata"`
	Points   []geom.Vec3  `json:"points"`
	Edges    []graph.Edge `json:"edges"`
}

// ExportJSON writes a stored snapshot as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	points, err := s.LoadPoints(runID)
	if err != nil {
		return err
	}
	edges, err := s.LoadEdges(runID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Metadata: meta, Points: points, Edges: edges})
}
