package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/gfxlab/internal/lab"
)

const (
	metadataFile = "metadata.json"
	movesFile    = "moves.csv"
	traceFile    = "trace.csv"
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

type SessionMetadata struct {
	ID        string             `json:"id"`
	Lab       string             `json:"lab"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Solved    bool               `json:"solved"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(sess *Session) (string, error) {
	ts := sess.Started
	if ts.IsZero() {
		ts = time.Now()
	}
	id := fmt.Sprintf("%s_%s", sess.Lab, ts.Format("20060102T150405.000000"))
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := SessionMetadata{
		ID:        id,
		Lab:       sess.Lab,
		Timestamp: ts,
		Seed:      sess.Seed,
		Solved:    sess.Solved,
		Metrics:   sess.Summary(),
	}

	metaFile, err := os.Create(filepath.Join(dir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	moves := [][]string{{"time", "move", "scramble"}}
	for _, m := range sess.Moves {
		moves = append(moves, []string{
			strconv.FormatFloat(m.Time, 'f', 6, 64),
			m.Move,
			strconv.FormatBool(m.Scramble),
		})
	}
	if err := writeCSV(filepath.Join(dir, movesFile), moves); err != nil {
		return "", err
	}

	trace := [][]string{{"time", "angle"}}
	for _, smp := range sess.Trace {
		trace = append(trace, []string{
			strconv.FormatFloat(smp.Time, 'f', 6, 64),
			strconv.FormatFloat(smp.Angle, 'f', 6, 64),
		})
	}
	if err := writeCSV(filepath.Join(dir, traceFile), trace); err != nil {
		return "", err
	}

	return id, nil
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return err
	}
	return w.Error()
}

// List returns every readable session, newest first.
func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMetadata{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), metadataFile))
		if err != nil {
			continue
		}

		var meta SessionMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		sessions = append(sessions, meta)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.After(sessions[j].Timestamp)
	})
	return sessions, nil
}

// Latest returns the newest session id.
func (s *Store) Latest() (string, error) {
	sessions, err := s.List()
	if err != nil {
		return "", err
	}
	if len(sessions) == 0 {
		return "", lab.ErrNoSession
	}
	return sessions[0].ID, nil
}

func (s *Store) open(id, name string) (*os.File, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", lab.ErrNoSession, id)
	}
	return f, err
}

func (s *Store) Load(id string) (*SessionMetadata, error) {
	f, err := s.open(id, metadataFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var meta SessionMetadata
	if err := json.NewDecoder(f).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", id, err)
	}
	return &meta, nil
}

func (s *Store) readCSV(id, name string) ([][]string, error) {
	f, err := s.open(id, name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}
	return records[1:], nil
}

func (s *Store) LoadMoves(id string) ([]TimedMove, error) {
	records, err := s.readCSV(id, movesFile)
	if err != nil {
		return nil, err
	}

	moves := make([]TimedMove, 0, len(records))
	for _, rec := range records {
		if len(rec) < 3 {
			continue
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}
		scramble, _ := strconv.ParseBool(rec[2])
		moves = append(moves, TimedMove{Time: t, Move: rec[1], Scramble: scramble})
	}
	return moves, nil
}

func (s *Store) LoadTrace(id string) ([]Sample, error) {
	records, err := s.readCSV(id, traceFile)
	if err != nil {
		return nil, err
	}

	trace := make([]Sample, 0, len(records))
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}
		a, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			continue
		}
		trace = append(trace, Sample{Time: t, Angle: a})
	}
	return trace, nil
}

type ExportData struct {
	SessionMetadata
	Moves []TimedMove `json:"moves"`
	Trace []Sample    `json:"trace"`
}

// Export writes one session as a single JSON document.
func (s *Store) Export(id string, w io.Writer) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}
	moves, err := s.LoadMoves(id)
	if err != nil {
		return err
	}
	trace, err := s.LoadTrace(id)
	if err != nil {
		return err
	}

	data := ExportData{SessionMetadata: *meta, Moves: moves, Trace: trace}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (s *Store) ExportFile(id, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.Export(id, f)
}
