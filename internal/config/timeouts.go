package config

import (
	"fmt"
	"time"
)

const defaultGeneratorTimeout = 20 * time.Second

func (g GeneratorConfig) TimeoutDuration() (time.Duration, error) {
	if g.Timeout == "" {
		return defaultGeneratorTimeout, nil
	}
	d, err := time.ParseDuration(g.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid generator timeout %q: %w", g.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("generator timeout must be positive, got %s", d)
	}
	return d, nil
}
