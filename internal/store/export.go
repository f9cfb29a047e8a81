package store

import (
	"encoding/json"
	"os"

	"github.com/marioveld/turmac/internal/notation"
)

type exportMove struct {
	Tape      string `json:"tape"`
	FromCell  int    `json:"from_cell"`
	ToCell    int    `json:"to_cell"`
	FromState int    `json:"from_state"`
	ToState   int    `json:"to_state"`
}

type ExportData struct {
	RunMetadata
	Moves []exportMove `json:"moves"`
}

// ExportJSON writes one run, metadata and full move log, as a single JSON
// document.
func (s *Store) ExportJSON(runID, path string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	moves, err := s.LoadMoves(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		RunMetadata: *meta,
		Moves:       make([]exportMove, len(moves)),
	}
	for i, mv := range moves {
		data.Moves[i] = exportMove{
			Tape:      notation.FormatTape(mv.Symbols),
			FromCell:  mv.FromCell,
			ToCell:    mv.ToCell,
			FromState: mv.FromState,
			ToState:   mv.ToState,
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
