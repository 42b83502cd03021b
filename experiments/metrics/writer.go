package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type AgentConfig struct {
	ID         int
	Strategy   string
	Perfect    bool // sees the opponent's real ships
	Depth      int
	Steps      int
	Goroutines int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// moveRow is the parquet layout of a MoveRecord.
type moveRow struct {
	Game       int32   `parquet:"game"`
	Step       int32   `parquet:"step"`
	Player     int32   `parquet:"player"`
	Strategy   string  `parquet:"strategy,dict"`
	Target     string  `parquet:"target"`
	Outcome    string  `parquet:"outcome,dict"`
	Depth      int32   `parquet:"depth"`
	Steps      int32   `parquet:"steps"`
	Goroutines int32   `parquet:"goroutines"`
	DurationMs float64 `parquet:"duration_ms"`
	Nodes      int64   `parquet:"nodes"`
	Playouts   int64   `parquet:"playouts"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates a folder for experiment name, named by current timestamp.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", file, err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "strategy", "perfect", "depth", "steps", "goroutines"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			strconv.FormatBool(config.Perfect),
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Steps),
			strconv.Itoa(config.Goroutines),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "game_id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.GameID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

// WriteMoveRecords stores one parquet row per move, written to a temp file
// and renamed into place.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([]moveRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, moveRow{
			Game:       int32(r.Game),
			Step:       int32(r.Step),
			Player:     int32(r.Player),
			Strategy:   r.Strategy,
			Target:     r.Target,
			Outcome:    r.Outcome,
			Depth:      int32(r.Depth),
			Steps:      int32(r.Steps),
			Goroutines: int32(r.Goroutines),
			DurationMs: float64(r.Duration) / float64(time.Millisecond),
			Nodes:      int64(r.Nodes),
			Playouts:   int64(r.Playouts),
		})
	}

	path := filepath.Join(w.baseDir, "move_records.parquet")
	tmpPath := path + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "move_record_v1"),
	); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename move records: %w", err)
	}
	return nil
}

// ReadMoveRecords loads a move_records.parquet file written by WriteMoveRecords.
func ReadMoveRecords(path string) ([]MoveRecord, error) {
	rows, err := parquet.ReadFile[moveRow](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read move records: %w", err)
	}
	records := make([]MoveRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, MoveRecord{
			Game: int(r.Game),
			MoveMetric: MoveMetric{
				Step:    int(r.Step),
				Player:  int(r.Player),
				Target:  r.Target,
				Outcome: r.Outcome,
				SearchMetric: SearchMetric{
					Strategy:   r.Strategy,
					Depth:      int(r.Depth),
					Steps:      int(r.Steps),
					Goroutines: int(r.Goroutines),
					Duration:   time.Duration(r.DurationMs * float64(time.Millisecond)),
					Nodes:      int(r.Nodes),
					Playouts:   int(r.Playouts),
				},
			},
		})
	}
	return records, nil
}
