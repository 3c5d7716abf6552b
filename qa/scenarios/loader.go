package scenarios

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Expected lists the checks applied to a finished run. Nil fields are not
// checked.
type Expected struct {
	FinalScore *int `yaml:"final_score,omitempty"`
	Handled    *int `yaml:"handled,omitempty"`
	Missed     *int `yaml:"missed,omitempty"`
	Unhandled  *int `yaml:"unhandled,omitempty"`
	Incidents  *int `yaml:"incidents,omitempty"`
}

// Scenario is a scripted, reproducible simulation run.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	// Seed fixes the random source when Draws is empty.
	Seed int64 `yaml:"seed,omitempty"`
	// Draws replaces the random source with a fixed cycle of values.
	Draws                 []int    `yaml:"draws,omitempty"`
	Rounds                int      `yaml:"rounds"`
	BatchSize             int      `yaml:"batch_size,omitempty"`
	MissChanceDenominator int      `yaml:"miss_chance_denominator,omitempty"`
	Inputs                []string `yaml:"inputs"`
	Expected              Expected `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if sc.Rounds < 0 || sc.BatchSize < 0 || sc.MissChanceDenominator < 0 {
		return nil, fmt.Errorf("scenario %s: negative rounds, batch size or miss chance", sc.Name)
	}
	return &sc, nil
}
