package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"p360_analytics_backend/internal/config"
)

func TestApplyConfigRunsRegisteredCallbacks(t *testing.T) {
	a := &App{}

	var seen []string
	a.RegisterConfigCallback(func(c *config.Config) {
		seen = append(seen, "primeiro:"+c.Server.Mode)
	})
	a.RegisterConfigCallback(func(c *config.Config) {
		seen = append(seen, "segundo:"+c.Server.Mode)
	})

	a.ApplyConfig(&config.Config{Server: config.ServerConfig{Mode: "release"}})

	assert.Equal(t, []string{"primeiro:release", "segundo:release"}, seen)
}

func TestApplyConfigWithoutCallbacks(t *testing.T) {
	a := &App{}
	a.ApplyConfig(&config.Config{})
}
