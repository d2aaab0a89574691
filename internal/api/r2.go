package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Bucket is the subset of the R2 bucket resource the CLI cares about.
type Bucket struct {
	Name         string `json:"name"`
	CreationDate string `json:"creation_date,omitempty"`
	Location     string `json:"location,omitempty"`
}

// GetBucket checks that an R2 bucket exists in the account. A 404 surfaces
// as a perr not-found error, which callers treat as a warning rather than
// a hard failure.
func (c *Client) GetBucket(ctx context.Context, accountId string, bucketName string) (*Bucket, error) {
	path := fmt.Sprintf("/accounts/%s/r2/buckets/%s", url.PathEscape(accountId), url.PathEscape(bucketName))

	var bucket Bucket
	if err := c.do(ctx, http.MethodGet, path, nil, &bucket); err != nil {
		return nil, err
	}
	return &bucket, nil
}
