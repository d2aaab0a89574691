package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigInContext(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	cfgIn, err := NewConfig(WithToken("t0ken"))
	assert.Nil(err)
	configCtx := Set(ctx, cfgIn)
	cfgOut := Get(configCtx)
	assert.NotEmpty(cfgOut)
	assert.Equal(cfgIn, cfgOut)
	assert.Equal(cfgIn.Token, cfgOut.Token)
}
