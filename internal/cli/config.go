package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mcoot/mtarp-portal/internal/model"
)

// Config holds CLI configuration
type Config struct {
	Endpoint  string
	Timeout   time.Duration
	StateFile string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Endpoint:  os.Getenv("MTARP_AUTH_ENDPOINT"),
		Timeout:   30 * time.Second,
		StateFile: getEnvOrDefault("MTARP_STATE_FILE", defaultStateFile()),
		Output:    "text",
		Verbose:   false,
	}
}

// LoadState reads the saved page state, or a fresh one if no state file exists
func (c *Config) LoadState() (model.ViewState, error) {
	data, err := os.ReadFile(c.StateFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewViewState(), nil // No state file is fine
		}
		return model.ViewState{}, err
	}

	var state model.ViewState
	if err := json.Unmarshal(data, &state); err != nil {
		return model.ViewState{}, fmt.Errorf("corrupt state file %s: %w", c.StateFile, err)
	}
	if !state.Tab.Valid() {
		state.Tab = model.TabHome
	}
	return state, nil
}

// SaveState writes the page state to the state file. The pending notification
// belongs to the command that produced it and is not kept; passwords are
// never serialized.
func (c *Config) SaveState(state model.ViewState) error {
	state.Notification = nil
	state.Loading = false

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.StateFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.StateFile, data, 0600)
}

func defaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mtarp/state.json"
	}
	return filepath.Join(home, ".mtarp", "state.json")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
