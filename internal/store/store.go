// Package store persists completed runs under a data directory: one
// directory per run holding metadata.json and the full move log as
// moves.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/marioveld/turmac/internal/machine"
	"github.com/marioveld/turmac/internal/notation"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Program   []string  `json:"program"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Steps     int       `json:"steps"`
	Halted    bool      `json:"halted"`
	Timestamp time.Time `json:"timestamp"`
}

// Save records a completed run and returns its id.
func (s *Store) Save(name string, program machine.Program, trace *machine.Trace) (string, error) {
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      name,
		Program:   notation.FormatProgram(program),
		Input:     notation.FormatTape(trace.Input),
		Output:    notation.FormatTape(trace.Output),
		Steps:     trace.Steps(),
		Halted:    trace.Halted,
		Timestamp: time.Now(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "moves.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"step", "from_state", "to_state", "from_cell", "to_cell", "tape"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, mv := range trace.Moves {
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(mv.FromState),
			strconv.Itoa(mv.ToState),
			strconv.Itoa(mv.FromCell),
			strconv.Itoa(mv.ToCell),
			notation.FormatTape(mv.Symbols),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadMoves reads a run's move log back into Move values.
func (s *Store) LoadMoves(runID string) ([]machine.Move, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "moves.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []machine.Move{}, nil
	}

	moves := make([]machine.Move, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 6 {
			return nil, fmt.Errorf("move row has %d fields, want 6", len(record))
		}
		fields := make([]int, 5)
		for i := 1; i < 5; i++ {
			v, err := strconv.Atoi(record[i])
			if err != nil {
				return nil, fmt.Errorf("move field %q: %w", record[i], err)
			}
			fields[i] = v
		}
		symbols, err := notation.ParseTape(record[5])
		if err != nil {
			return nil, err
		}
		moves = append(moves, machine.Move{
			Symbols:   symbols,
			FromState: fields[1],
			ToState:   fields[2],
			FromCell:  fields[3],
			ToCell:    fields[4],
		})
	}

	return moves, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}
