package experiments

import (
	"errors"
	"fmt"
	"os"

	"minimax/meta"

	"gopkg.in/yaml.v2"
)

type Matchup struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

func (m Matchup) String() string {
	return m.First + " vs " + m.Second
}

// Config describes one experiment. Param is the starting value for subtract
// and the board side for stonehenge; chopsticks ignores it.
type Config struct {
	Name     string    `yaml:"name"`
	Game     string    `yaml:"game"`
	Param    int       `yaml:"param"`
	Games    int       `yaml:"games"` // Per matchup
	MaxNodes int       `yaml:"max_nodes"`
	MaxTurns int       `yaml:"max_turns"`
	Seed     uint64    `yaml:"seed"`
	Output   string    `yaml:"output"`
	Matchups []Matchup `yaml:"matchups"`
}

func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}
	cfg := Config{
		Games:    1,
		MaxNodes: meta.CLI_MAX_NODES,
		MaxTurns: meta.MAX_TURNS,
		Seed:     meta.SEED,
		Output:   meta.OUTPUT_DIR,
	}
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse experiment config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Name == "":
		return errors.New("experiment needs a name")
	case c.Games <= 0:
		return fmt.Errorf("experiment %s: games must be positive, got %d", c.Name, c.Games)
	case len(c.Matchups) == 0:
		return fmt.Errorf("experiment %s: no matchups", c.Name)
	}
	return nil
}
