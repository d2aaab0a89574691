package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	assert := assert.New(t)
	cfg, err := NewConfig()
	assert.Nil(err)
	assert.Equal(3*time.Second, cfg.PropagationDelay)
}

func TestConfigOptions(t *testing.T) {
	assert := assert.New(t)
	cfg, err := NewConfig(WithToken("t0ken"), WithPropagationDelay(0))
	assert.Nil(err)
	assert.Equal("t0ken", cfg.Token)
	assert.Equal(time.Duration(0), cfg.PropagationDelay)
}
