package gamerecord

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"

	"github.com/courtside/hoopgen/internal/models"
)

// maxLineBytes bounds a single stored line. Hard-difficulty examples run
// to hundreds of events, so the scanner buffer is sized well past them.
const maxLineBytes = 32 << 20

// JSONLConfig holds configuration for the JSONL game record repository
type JSONLConfig struct {
	// Path is the JSONL file the repository appends to
	Path string
}

// jsonlRepository implements the Repository interface on an append-only
// JSONL file: one line per artifact, the example line directly followed
// by its report line.
type jsonlRepository struct {
	mu   sync.Mutex
	path string
}

// NewJSONL creates a new file-backed game record repository
func NewJSONL(cfg *JSONLConfig) (*jsonlRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	return &jsonlRepository{
		path: cfg.Path,
	}, nil
}

// SaveGame appends a game's example and report lines to the file
func (r *jsonlRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.GameID == "" {
		return errors.New("game ID cannot be empty")
	}

	if record.Example == nil || record.Report == nil {
		return errors.New("record needs both artifacts")
	}

	// Build both lines up front so a marshal failure writes nothing
	var buf bytes.Buffer
	if err := appendLine(&buf, record.GameID, models.RecordTypeExample, record.Example); err != nil {
		return err
	}
	if err := appendLine(&buf, record.GameID, models.RecordTypeTrueReport, record.Report); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open record file: %w", err)
	}
	defer file.Close()

	// A single write keeps the example and report lines adjacent even
	// with concurrent savers on the same repository.
	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}

	return nil
}

// GetGame scans the file for the two lines carrying the game ID
func (r *jsonlRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.GameRecord, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	record := &models.GameRecord{GameID: input.GameID}
	err := r.scanLines(func(line *models.RecordLine) error {
		if line.GameID != input.GameID {
			return nil
		}
		switch line.Type {
		case models.RecordTypeExample:
			var example models.GameExample
			if err := json.Unmarshal(line.Data, &example); err != nil {
				return fmt.Errorf("failed to unmarshal example: %w", err)
			}
			record.Example = &example
		case models.RecordTypeTrueReport:
			var report models.TrueReport
			if err := json.Unmarshal(line.Data, &report); err != nil {
				return fmt.Errorf("failed to unmarshal report: %w", err)
			}
			record.Report = &report
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if record.Example == nil || record.Report == nil {
		return nil, ErrGameNotFound
	}

	return record, nil
}

// ListGameIDs returns the distinct stored game IDs, sorted
func (r *jsonlRepository) ListGameIDs(ctx context.Context, input *ListGameIDsInput) (*ListGameIDsOutput, error) {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	err := r.scanLines(func(line *models.RecordLine) error {
		if !seen[line.GameID] {
			seen[line.GameID] = true
			ids = append(ids, line.GameID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(ids)
	return &ListGameIDsOutput{GameIDs: ids}, nil
}

// scanLines walks every stored line under the lock. A missing file reads
// as an empty store.
func (r *jsonlRepository) scanLines(visit func(*models.RecordLine) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open record file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var line models.RecordLine
		if err := json.Unmarshal(raw, &line); err != nil {
			return fmt.Errorf("failed to unmarshal record line: %w", err)
		}
		if err := visit(&line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read record file: %w", err)
	}

	return nil
}

// appendLine marshals one artifact into its envelope line
func appendLine(buf *bytes.Buffer, gameID string, recordType models.RecordType, artifact any) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", recordType, err)
	}

	line, err := json.Marshal(&models.RecordLine{
		GameID: gameID,
		Type:   recordType,
		Data:   data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s line: %w", recordType, err)
	}

	buf.Write(line)
	buf.WriteByte('\n')
	return nil
}
