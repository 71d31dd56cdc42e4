package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
)

// Client calls the alchemy service with typed messages
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client on an existing connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// BuildIndex calls AlchemyService.BuildIndex
func (c *Client) BuildIndex(ctx context.Context, req *BuildIndexRequest, opts ...grpc.CallOption) (*BuildIndexResponse, error) {
	resp := &BuildIndexResponse{}
	if err := c.invoke(ctx, BuildIndexFullMethodName, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetIndex calls AlchemyService.GetIndex
func (c *Client) GetIndex(ctx context.Context, req *GetIndexRequest, opts ...grpc.CallOption) (*GetIndexResponse, error) {
	resp := &GetIndexResponse{}
	if err := c.invoke(ctx, GetIndexFullMethodName, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// ResolveGrants calls AlchemyService.ResolveGrants
func (c *Client) ResolveGrants(ctx context.Context, req *ResolveGrantsRequest, opts ...grpc.CallOption) (*ResolveGrantsResponse, error) {
	resp := &ResolveGrantsResponse{}
	if err := c.invoke(ctx, ResolveGrantsFullMethodName, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// LevelChanged calls AlchemyService.LevelChanged
func (c *Client) LevelChanged(ctx context.Context, req *LevelChangedRequest, opts ...grpc.CallOption) (*LevelChangedResponse, error) {
	resp := &LevelChangedResponse{}
	if err := c.invoke(ctx, LevelChangedFullMethodName, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// SaveActor calls AlchemyService.SaveActor
func (c *Client) SaveActor(ctx context.Context, req *SaveActorRequest, opts ...grpc.CallOption) (*SaveActorResponse, error) {
	resp := &SaveActorResponse{}
	if err := c.invoke(ctx, SaveActorFullMethodName, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetActor calls AlchemyService.GetActor
func (c *Client) GetActor(ctx context.Context, req *GetActorRequest, opts ...grpc.CallOption) (*GetActorResponse, error) {
	resp := &GetActorResponse{}
	if err := c.invoke(ctx, GetActorFullMethodName, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// invoke returns call failures as *errors.Error with the server's code and meta
func (c *Client) invoke(ctx context.Context, method string, req, resp any, opts ...grpc.CallOption) error {
	in, err := Encode(req)
	if err != nil {
		return err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return errors.FromGRPCError(err)
	}

	return Decode(out, resp)
}
