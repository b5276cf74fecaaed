package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	Level        string         `json:"level"`
	Escaped      bool           `json:"escaped"`
	TurnsPlayed  int            `json:"turns_played"`
	Kills        map[string]int `json:"kills"` // entity_type → count
	DamageTaken  float64        `json:"damage_taken"`
	CauseOfDeath string         `json:"cause_of_death,omitempty"` // entity_type of the last attacker
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
func saveRunLog(log RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

// runLogDir returns the directory where run logs are stored.
// Follows the XDG Base Directory layout: $XDG_DATA_HOME/backrooms-crawl,
// defaulting to ~/.local/share/backrooms-crawl.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "backrooms-crawl"), nil
}
