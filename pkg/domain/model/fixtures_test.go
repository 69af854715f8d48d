package model_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rosterhub/rosterhub/pkg/domain/model"
	"github.com/rosterhub/rosterhub/pkg/domain/types"
)

func writeFixturesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixtures.yml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFixturesConfig(t *testing.T) {
	t.Run("Valid file", func(t *testing.T) {
		path := writeFixturesFile(t, `
fixtures:
  - id: mock-t1
    type: team
    name: Mock Thunder
    subtitle: Demo team
  - id: mock-l1
    type: league
    name: Mock League
    private: true
`)
		cfg, err := model.LoadFixturesConfig(path)
		gt.NoError(t, err)
		gt.Equal(t, len(cfg.Fixtures), 2)

		results := cfg.SearchResults()
		gt.Equal(t, len(results), 2)
		gt.Equal(t, results[0].ID, "mock-t1")
		gt.Equal(t, results[0].Type, types.EntityTypeTeam)
		gt.Equal(t, results[1].Name, "Mock League")
		gt.True(t, results[1].Private)
	})

	t.Run("Missing ID gets generated", func(t *testing.T) {
		path := writeFixturesFile(t, `
fixtures:
  - type: team
    name: Anonymous Mock
`)
		cfg, err := model.LoadFixturesConfig(path)
		gt.NoError(t, err)
		gt.NotEqual(t, cfg.Fixtures[0].ID, "")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := model.LoadFixturesConfig(filepath.Join(t.TempDir(), "nope.yml"))
		gt.Error(t, err)
	})

	t.Run("Invalid type", func(t *testing.T) {
		path := writeFixturesFile(t, `
fixtures:
  - id: mock-x
    type: stadium
    name: Mock Stadium
`)
		_, err := model.LoadFixturesConfig(path)
		gt.Error(t, err)
	})

	t.Run("Duplicate ID", func(t *testing.T) {
		path := writeFixturesFile(t, `
fixtures:
  - id: dup
    type: team
    name: One
  - id: dup
    type: team
    name: Two
`)
		_, err := model.LoadFixturesConfig(path)
		gt.Error(t, err)
	})

	t.Run("Missing name", func(t *testing.T) {
		path := writeFixturesFile(t, `
fixtures:
  - id: mock-x
    type: team
`)
		_, err := model.LoadFixturesConfig(path)
		gt.Error(t, err)
	})
}
