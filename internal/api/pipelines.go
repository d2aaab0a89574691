package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/oliy/workers-sdk/internal/types"
)

func pipelinesPath(accountId string) string {
	return fmt.Sprintf("/accounts/%s/pipelines", url.PathEscape(accountId))
}

func pipelinePath(accountId string, name string) string {
	return pipelinesPath(accountId) + "/" + url.PathEscape(name)
}

// CreatePipeline registers a new pipeline. The server assigns id, version
// and the ingest endpoint.
func (c *Client) CreatePipeline(ctx context.Context, accountId string, config *types.Pipeline) (*types.Pipeline, error) {
	var created types.Pipeline
	if err := c.do(ctx, http.MethodPost, pipelinesPath(accountId), config, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListPipelines(ctx context.Context, accountId string) ([]types.Pipeline, error) {
	var items []types.Pipeline
	if err := c.do(ctx, http.MethodGet, pipelinesPath(accountId), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetPipeline(ctx context.Context, accountId string, name string) (*types.Pipeline, error) {
	var pipeline types.Pipeline
	if err := c.do(ctx, http.MethodGet, pipelinePath(accountId, name), nil, &pipeline); err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// UpdatePipeline replaces the named pipeline's configuration. The caller is
// expected to have merged its changes over the currently deployed config
// first; the update response omits credentials, which are write-only.
func (c *Client) UpdatePipeline(ctx context.Context, accountId string, name string, config *types.Pipeline) (*types.Pipeline, error) {
	var updated types.Pipeline
	if err := c.do(ctx, http.MethodPut, pipelinePath(accountId, name), config, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePipeline(ctx context.Context, accountId string, name string) error {
	return c.do(ctx, http.MethodDelete, pipelinePath(accountId, name), nil, nil)
}
