package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/oliy/workers-sdk/internal/perr"
	"github.com/oliy/workers-sdk/internal/types"
)

// r2WritePermissionGroupName is the fixed permission group granting
// object-write access to a single bucket.
const r2WritePermissionGroupName = "Workers R2 Storage Bucket Item Write"

type PermissionGroup struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type serviceToken struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type tokenPolicy struct {
	Effect           string            `json:"effect"`
	PermissionGroups []PermissionGroup `json:"permission_groups"`
	Resources        map[string]string `json:"resources"`
}

type createTokenRequest struct {
	Name     string        `json:"name"`
	Policies []tokenPolicy `json:"policies"`
}

func (c *Client) getR2WritePermissionGroup(ctx context.Context) (*PermissionGroup, error) {
	var groups []PermissionGroup
	if err := c.do(ctx, http.MethodGet, "/user/tokens/permission_groups", nil, &groups); err != nil {
		return nil, err
	}

	for _, g := range groups {
		if g.Name == r2WritePermissionGroupName {
			return &g, nil
		}
	}
	return nil, perr.NotFoundWithMessage("Permission group: " + r2WritePermissionGroupName)
}

func (c *Client) createBucketToken(ctx context.Context, accountId string, bucketName string, group *PermissionGroup) (*serviceToken, error) {
	request := createTokenRequest{
		Name: fmt.Sprintf("Pipelines token for bucket %s", bucketName),
		Policies: []tokenPolicy{
			{
				Effect:           "allow",
				PermissionGroups: []PermissionGroup{{Id: group.Id}},
				Resources: map[string]string{
					fmt.Sprintf("com.cloudflare.edge.r2.bucket.%s_default_%s", accountId, bucketName): "*",
				},
			},
		},
	}

	var token serviceToken
	if err := c.do(ctx, http.MethodPost, "/user/tokens", &request, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// GenerateBucketCredentials provisions a scoped write token for the target
// bucket and derives S3-style credentials from it. The token takes a moment
// to propagate through the control plane, so we wait a fixed delay before
// handing the credentials out for use.
func (c *Client) GenerateBucketCredentials(ctx context.Context, accountId string, bucketName string) (*types.Credentials, error) {
	group, err := c.getR2WritePermissionGroup(ctx)
	if err != nil {
		return nil, err
	}

	token, err := c.createBucketToken(ctx, accountId, bucketName, group)
	if err != nil {
		return nil, err
	}

	if err := c.sleep(ctx, c.propagationDelay); err != nil {
		return nil, perr.Internal(err)
	}

	secret := sha256.Sum256([]byte(token.Value))
	return &types.Credentials{
		Endpoint:        fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountId),
		AccessKeyId:     token.Id,
		SecretAccessKey: hex.EncodeToString(secret[:]),
	}, nil
}
