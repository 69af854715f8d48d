package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rosterhub/rosterhub/pkg/domain/interfaces"
	"github.com/rosterhub/rosterhub/pkg/domain/model"
)

// Memory implements Repository with in-memory storage
type Memory struct {
	mu         sync.RWMutex
	summaries  []model.SearchResult
	summaryIDs map[string]int
	fixtures   []model.SearchResult
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		summaryIDs: make(map[string]int),
	}
}

// SaveSummary stores one entity summary, replacing any entry with the
// same ID while keeping its original position
func (m *Memory) SaveSummary(ctx context.Context, result *model.SearchResult) error {
	if result == nil {
		return goerr.New("summary is nil")
	}
	if result.ID == "" {
		return goerr.New("summary ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if i, exists := m.summaryIDs[result.ID]; exists {
		m.summaries[i] = *result
		return nil
	}
	m.summaryIDs[result.ID] = len(m.summaries)
	m.summaries = append(m.summaries, *result)
	return nil
}

// ListSummaries returns all stored summaries in insertion order
func (m *Memory) ListSummaries(ctx context.Context) ([]model.SearchResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	results := make([]model.SearchResult, len(m.summaries))
	copy(results, m.summaries)
	return results, nil
}

// FilterSummaries returns summaries whose name contains the query,
// case-insensitively. An empty query matches nothing.
func (m *Memory) FilterSummaries(ctx context.Context, query string) ([]model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.SearchResult{}, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(query)
	results := make([]model.SearchResult, 0, len(m.summaries))
	for _, s := range m.summaries {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			results = append(results, s)
		}
	}
	return results, nil
}

// SeedFixtures replaces the stored fixture entries
func (m *Memory) SeedFixtures(ctx context.Context, fixtures []model.SearchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fixtures = make([]model.SearchResult, len(fixtures))
	copy(m.fixtures, fixtures)
	return nil
}

// ListFixtures returns all fixture entries
func (m *Memory) ListFixtures(ctx context.Context) ([]model.SearchResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]model.SearchResult, len(m.fixtures))
	copy(results, m.fixtures)
	return results, nil
}

// Close closes the repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}
