package common

import (
	"context"

	"github.com/spf13/viper"

	"github.com/oliy/workers-sdk/internal/api"
	"github.com/oliy/workers-sdk/internal/config"
)

// GetApiClient builds a control plane client from the global viper config
// and the runtime config on the context.
func GetApiClient(ctx context.Context) *api.Client {
	c := config.Get(ctx)

	return api.NewClient(
		api.WithBaseURL(viper.GetString("api.host")),
		api.WithToken(c.Token),
		api.WithPropagationDelay(c.PropagationDelay),
		api.WithTLSInsecure(viper.GetBool("api.insecure")),
	)
}
