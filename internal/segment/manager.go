package segment

import (
	"fmt"
	"sync"

	"edge-segmenter/internal/segment/edgemode"
	"edge-segmenter/internal/segment/edgepercentile"
)

// Manager registers the available segmentation variants and keeps a
// mutable parameter set per variant.
type Manager struct {
	variants       map[string]Segmenter
	currentVariant string
	parameters     map[string]map[string]interface{}
	mu             sync.RWMutex
}

func NewManager() *Manager {
	manager := &Manager{
		variants:       make(map[string]Segmenter),
		currentVariant: edgemode.Name,
		parameters:     make(map[string]map[string]interface{}),
	}

	manager.registerVariants()
	manager.initializeDefaultParameters()

	return manager
}

func (m *Manager) registerVariants() {
	modeVariant := edgemode.NewProcessor()
	percentileVariant := edgepercentile.NewProcessor()

	m.variants[modeVariant.GetName()] = modeVariant
	m.variants[percentileVariant.GetName()] = percentileVariant
}

func (m *Manager) initializeDefaultParameters() {
	for name, variant := range m.variants {
		m.parameters[name] = variant.GetDefaultParameters()
	}
}

func (m *Manager) SetCurrentVariant(variant string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.variants[variant]; !exists {
		return fmt.Errorf("unknown variant: %s", variant)
	}

	m.currentVariant = variant
	return nil
}

func (m *Manager) GetCurrentVariant() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentVariant
}

// GetParameters returns a copy of the variant's parameter set, so
// callers can layer overrides without touching the stored defaults.
func (m *Manager) GetParameters(variant string) map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]interface{})
	if params, exists := m.parameters[variant]; exists {
		for k, v := range params {
			result[k] = v
		}
	}
	return result
}

func (m *Manager) SetParameter(variant, name string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if params, exists := m.parameters[variant]; exists {
		params[name] = value
		return nil
	}

	return fmt.Errorf("unknown variant: %s", variant)
}

func (m *Manager) GetSegmenter(name string) (Segmenter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if variant, exists := m.variants[name]; exists {
		return variant, nil
	}

	return nil, fmt.Errorf("unknown variant: %s", name)
}

func (m *Manager) GetAvailableVariants() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	variants := make([]string, 0, len(m.variants))
	for name := range m.variants {
		variants = append(variants, name)
	}

	return variants
}
