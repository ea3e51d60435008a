package storage

import (
	"encoding/binary"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/geom"
	"github.com/san-kum/corefield/internal/graph"
)

const (
	metadataFile = "metadata.json"
	pointsFile   = "points.csv"
	edgesFile    = "edges.csv"
	frameFile    = "frame.svg"
)

var (
	ErrNotFound = errors.New("storage: snapshot not found")
	// ErrCorrupt means stored points no longer match the checksum recorded
	// when the snapshot was saved.
	ErrCorrupt = errors.New("storage: snapshot points do not match checksum")
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

type Metadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Elapsed   float64            `json:"elapsed"`
	Frames    int                `json:"frames"`
	Points    int                `json:"points"`
	Edges     int                `json:"edges"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Narrow    bool               `json:"narrow"`
	Checksum  string             `json:"checksum,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`
	Config    *config.Config     `json:"config"`
}

// Snapshot is everything Save writes for one captured frame.
type Snapshot struct {
	Meta   Metadata
	Points []geom.Vec3
	Edges  []graph.Edge
	SVG    string
}

// Save writes snap into a fresh directory and returns its ID. A failed save
// leaves no directory behind.
func (s *Store) Save(snap Snapshot) (id string, err error) {
	if err := s.Init(); err != nil {
		return "", err
	}
	now := time.Now()
	runID, runDir, err := s.reserve(snap.Meta.Preset, now)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	meta := snap.Meta
	meta.ID = runID
	meta.Timestamp = now
	meta.Points = len(snap.Points)
	meta.Edges = len(snap.Edges)
	meta.Checksum = Checksum(snap.Points)

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(snap.Points)+1)
	rows = append(rows, []string{"x", "y", "z"})
	for _, p := range snap.Points {
		rows = append(rows, []string{formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z)})
	}
	if err := writeCSV(filepath.Join(runDir, pointsFile), rows); err != nil {
		return "", err
	}

	rows = make([][]string, 0, len(snap.Edges)+1)
	rows = append(rows, []string{"i", "j"})
	for _, e := range snap.Edges {
		rows = append(rows, []string{strconv.Itoa(e.I), strconv.Itoa(e.J)})
	}
	if err := writeCSV(filepath.Join(runDir, edgesFile), rows); err != nil {
		return "", err
	}

	if snap.SVG != "" {
		if err := os.WriteFile(filepath.Join(runDir, frameFile), []byte(snap.SVG), 0644); err != nil {
			return "", err
		}
	}
	return runID, nil
}

// reserve creates a unique snapshot directory named after the preset and time.
func (s *Store) reserve(preset string, now time.Time) (string, string, error) {
	if preset == "" {
		preset = "custom"
	}
	base := fmt.Sprintf("%s_%s", preset, now.Format("20060102-150405"))
	for i := 1; ; i++ {
		id := base
		if i > 1 {
			id = fmt.Sprintf("%s_%d", base, i)
		}
		dir := filepath.Join(s.baseDir, id)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return id, dir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
	}
}

// List returns all readable snapshots, oldest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	runs := make([]Metadata, 0)
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
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadPoints(runID string) ([]geom.Vec3, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, pointsFile))
	if err != nil {
		return nil, err
	}
	points := make([]geom.Vec3, 0, len(records))
	for line, rec := range records {
		if len(rec) != 3 {
			return nil, fmt.Errorf("%s line %d: want 3 fields, got %d", pointsFile, line+2, len(rec))
		}
		var v [3]float64
		for i, f := range rec {
			if v[i], err = strconv.ParseFloat(f, 64); err != nil {
				return nil, fmt.Errorf("%s line %d: %w", pointsFile, line+2, err)
			}
		}
		points = append(points, geom.Vec3{X: v[0], Y: v[1], Z: v[2]})
	}

	if meta, err := s.Load(runID); err == nil && meta.Checksum != "" {
		if got := Checksum(points); got != meta.Checksum {
			return nil, fmt.Errorf("%w: %s has %s, recorded %s", ErrCorrupt, runID, got, meta.Checksum)
		}
	}
	return points, nil
}

// Checksum is the xxhash64 of the points' coordinate bits, in hex.
func Checksum(points []geom.Vec3) string {
	d := xxhash.New()
	var buf [24]byte
	for _, p := range points {
		binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(p.Y))
		binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(p.Z))
		d.Write(buf[:])
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

func (s *Store) LoadEdges(runID string) ([]graph.Edge, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, edgesFile))
	if err != nil {
		return nil, err
	}
	edges := make([]graph.Edge, 0, len(records))
	for line, rec := range records {
		if len(rec) != 2 {
			return nil, fmt.Errorf("%s line %d: want 2 fields, got %d", edgesFile, line+2, len(rec))
		}
		i, errI := strconv.Atoi(rec[0])
		j, errJ := strconv.Atoi(rec[1])
		if err := errors.Join(errI, errJ); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", edgesFile, line+2, err)
		}
		edges = append(edges, graph.Edge{I: i, J: j})
	}
	return edges, nil
}

// FramePath returns the stored SVG path for runID, or "" if none was saved.
func (s *Store) FramePath(runID string) string {
	p := filepath.Join(s.baseDir, runID, frameFile)
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}

// readCSV returns the records after the header row.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return [][]string{}, nil
	}
	return records[1:], nil
}
