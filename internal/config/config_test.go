package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/mupshaw/gopond/internal/ponding"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()
	assert.Equal(t, ponding.DefaultConfig(), cfg.Iteration())
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("tolerance", 0.001)
	viper.Set("max_iterations", 50)

	cfg := Load()
	iter := cfg.Iteration()
	assert.InDelta(t, 0.001, iter.Tolerance, 1e-12)
	assert.Equal(t, 50, iter.MaxIterations)
	assert.Equal(t, ponding.DefaultDivergenceCycles, iter.DivergenceCycles)
}
