package textgen

import (
	"fmt"

	"gstmitra/internal/config"
	"gstmitra/internal/port"
)

// ProviderFactory is a function that creates a TextGenerator from a provider config.
type ProviderFactory func(cfg *config.GeneratorProviderConfig) (port.TextGenerator, error)

// registry of generator provider factories, populated explicitly via
// RegisterProvider (the provider packages register themselves in main).
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a generator provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewGenerator creates a TextGenerator from a provider config using the
// registered factory.
func NewGenerator(cfg *config.GeneratorProviderConfig) (port.TextGenerator, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown generator provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// FromConfig assembles the configured generator chain: primary then
// secondary under a fallback with circuit breaking. With no provider
// configured it returns the noop generator, so callers always hold a usable
// TextGenerator and run on their deterministic templates alone.
func FromConfig(cfg *config.GeneratorConfig) (port.TextGenerator, error) {
	var gens []port.TextGenerator
	var names []string

	for _, pc := range []*config.GeneratorProviderConfig{cfg.PrimaryConfig(), cfg.SecondaryConfig()} {
		if pc == nil {
			continue
		}
		gen, err := NewGenerator(pc)
		if err != nil {
			return nil, err
		}
		gens = append(gens, gen)
		names = append(names, pc.Provider)
	}

	switch len(gens) {
	case 0:
		return NewNoopGenerator(), nil
	case 1:
		return gens[0], nil
	default:
		return NewFallbackGenerator(gens, names), nil
	}
}
