package model

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rosterhub/rosterhub/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// FixturesConfig holds mock search entries loaded from a YAML file.
// These back the IncludeMocks merge source for demo and test builds.
type FixturesConfig struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

// Fixture is one mock search entry
type Fixture struct {
	ID       string `yaml:"id"`
	Type     string `yaml:"type"`
	Name     string `yaml:"name"`
	Subtitle string `yaml:"subtitle,omitempty"`
	LogoURL  string `yaml:"logoUrl,omitempty"`
	Private  bool   `yaml:"private,omitempty"`
}

// Validate validates the fixtures configuration. A fixture without an
// explicit ID gets a generated one.
func (c *FixturesConfig) Validate() error {
	idMap := make(map[string]bool)
	for i := range c.Fixtures {
		f := &c.Fixtures[i]
		if f.ID == "" {
			f.ID = fmt.Sprintf("mock-%s", uuid.New().String())
		}
		if f.Name == "" {
			return goerr.New("fixture name is required", goerr.V("id", f.ID))
		}
		switch types.EntityType(f.Type) {
		case types.EntityTypeTeam, types.EntityTypeLeague, types.EntityTypeTournament:
		default:
			return goerr.New("invalid fixture type",
				goerr.V("id", f.ID),
				goerr.V("type", f.Type))
		}
		if idMap[f.ID] {
			return goerr.New("duplicate fixture ID", goerr.V("id", f.ID))
		}
		idMap[f.ID] = true
	}
	return nil
}

// SearchResults converts the fixtures to uniform search results
func (c *FixturesConfig) SearchResults() []SearchResult {
	results := make([]SearchResult, 0, len(c.Fixtures))
	for _, f := range c.Fixtures {
		results = append(results, SearchResult{
			ID:       f.ID,
			Type:     types.EntityType(f.Type),
			Name:     f.Name,
			Subtitle: f.Subtitle,
			LogoURL:  f.LogoURL,
			Private:  f.Private,
		})
	}
	return results
}

// LoadFixturesConfig reads and validates a fixtures YAML file
func LoadFixturesConfig(path string) (*FixturesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read fixtures file", goerr.V("path", path))
	}

	var cfg FixturesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse fixtures file", goerr.V("path", path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid fixtures file", goerr.V("path", path))
	}

	return &cfg, nil
}
