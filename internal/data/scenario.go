package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Template holds the static stats for one kind of simulated creature,
// loaded from YAML.
type Template struct {
	Name          string `yaml:"name"`
	HP            int    `yaml:"hp"`
	RegenPerTick  int    `yaml:"regen_per_tick"`
	PoisonPerTick int    `yaml:"poison_per_tick"`
	PoisonTicks   int    `yaml:"poison_ticks"`
}

// SpawnEntry defines how many entities to create from a template.
type SpawnEntry struct {
	Template string `yaml:"template"`
	Count    int    `yaml:"count"`
}

type scenarioFile struct {
	Templates []Template   `yaml:"templates"`
	Spawns    []SpawnEntry `yaml:"spawns"`
}

// Scenario holds all creature templates indexed by name, plus the spawn list.
type Scenario struct {
	templates map[string]*Template
	Spawns    []SpawnEntry
}

// LoadScenario loads templates and spawn entries from a YAML file. Every
// spawn entry must reference a declared template.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return LoadScenarioBytes(raw)
}

// LoadScenarioBytes parses scenario YAML from memory.
func LoadScenarioBytes(raw []byte) (*Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	s := &Scenario{
		templates: make(map[string]*Template, len(f.Templates)),
		Spawns:    f.Spawns,
	}
	for i := range f.Templates {
		t := &f.Templates[i]
		if t.Name == "" {
			return nil, fmt.Errorf("scenario: template %d has no name", i)
		}
		s.templates[t.Name] = t
	}
	for _, sp := range f.Spawns {
		if _, ok := s.templates[sp.Template]; !ok {
			return nil, fmt.Errorf("scenario: spawn references unknown template %q", sp.Template)
		}
	}
	return s, nil
}

// Template returns the template with the given name.
func (s *Scenario) Template(name string) (*Template, bool) {
	t, ok := s.templates[name]
	return t, ok
}

// Count returns the number of loaded templates.
func (s *Scenario) Count() int {
	return len(s.templates)
}
