package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"dendrite/internal/config"

	"github.com/gocarina/gocsv"
)

// OutputManager writes run artefacts into one directory.
type OutputManager struct {
	dir          string
	growthFile   *os.File
	growthHeader bool
}

// NewOutputManager creates dir and opens growth.csv when csv is set. It
// returns nil if dir is empty (output disabled).
func NewOutputManager(dir string, csv bool) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	om := &OutputManager{dir: dir}
	if csv {
		f, err := os.Create(filepath.Join(dir, "growth.csv"))
		if err != nil {
			return nil, fmt.Errorf("creating growth.csv: %w", err)
		}
		om.growthFile = f
	}
	return om, nil
}

// Path joins name onto the output directory.
func (om *OutputManager) Path(name string) string {
	if om == nil {
		return name
	}
	return filepath.Join(om.dir, name)
}

// WriteConfig saves the run configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(om.Path("config.yaml"))
}

// WriteGrowth appends one sample to growth.csv.
func (om *OutputManager) WriteGrowth(s GrowthStats) error {
	if om == nil || om.growthFile == nil {
		return nil
	}
	records := []GrowthStats{s}
	if !om.growthHeader {
		if err := gocsv.Marshal(records, om.growthFile); err != nil {
			return fmt.Errorf("writing growth: %w", err)
		}
		om.growthHeader = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.growthFile); err != nil {
		return fmt.Errorf("writing growth: %w", err)
	}
	return nil
}

// Close flushes and closes open files.
func (om *OutputManager) Close() error {
	if om == nil || om.growthFile == nil {
		return nil
	}
	err := om.growthFile.Close()
	om.growthFile = nil
	return err
}
