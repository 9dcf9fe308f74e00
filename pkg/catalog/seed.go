package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

//go:embed seed.yaml
var defaultSeed []byte

// DemoJob is a job fixture shipped with the seed file. Timestamps are
// ISO-8601 strings; empty means unset.
type DemoJob struct {
	ClientID      int64   `yaml:"clientId"`
	WorkerID      int64   `yaml:"workerId"`
	Title         string  `yaml:"title"`
	Description   string  `yaml:"description"`
	Category      string  `yaml:"category"`
	Location      string  `yaml:"location"`
	Budget        float64 `yaml:"budget"`
	Deadline      string  `yaml:"deadline"`
	Status        string  `yaml:"status"`
	CreatedAt     string  `yaml:"createdAt"`
	ScheduledDate string  `yaml:"scheduledDate"`
	CompletedDate string  `yaml:"completedDate"`
}

// Seed is the reference data the catalog is built from.
type Seed struct {
	Categories []Category      `yaml:"categories"`
	Workers    []WorkerProfile `yaml:"workers"`
	DemoJobs   []DemoJob       `yaml:"demoJobs"`
}

// LoadSeed reads a YAML seed file. An empty path selects the seed embedded
// in the binary.
func LoadSeed(path string) (Seed, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Seed{}, fmt.Errorf("read seed file: %w", err)
		}
		data = b
	}
	return ParseSeed(data)
}

// ParseSeed decodes seed YAML.
func ParseSeed(data []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return s, nil
}
