package timer

import (
	"context"

	"timerpool/pkg/transport"
)

// ListPools returns one page of the caller's timer pools. req may be nil.
func (c *Client) ListPools(ctx context.Context, req *ListPoolsRequest) (*Page[TimerPool], error) {
	const op = "DescribeTimerPool"
	if req == nil {
		req = &ListPoolsRequest{}
	}
	call := c.call(op, "/timerPool")
	call.Query = pageQuery(req.PageToken, req.Limit)

	res, err := c.transport.Get(ctx, call)
	if err != nil {
		return nil, err
	}
	return decode[Page[TimerPool]](op, res)
}

// CreatePool creates a pool. A pool must exist before timers can be added.
func (c *Client) CreatePool(ctx context.Context, req *CreatePoolRequest) (*Item[TimerPool], error) {
	const op = "CreateTimerPool"
	if req == nil {
		return nil, missingRequest(op)
	}
	if err := required(op, "name", req.Name); err != nil {
		return nil, err
	}
	call := c.call(op, "/timerPool")
	call.Body = req

	res, err := c.transport.Post(ctx, call)
	if err != nil {
		return nil, err
	}
	return decode[Item[TimerPool]](op, res)
}

func (c *Client) UpdatePool(ctx context.Context, req *UpdatePoolRequest) (*Item[TimerPool], error) {
	const op = "UpdateTimerPool"
	if req == nil {
		return nil, missingRequest(op)
	}
	if err := required(op, "timerPoolName", req.TimerPoolName); err != nil {
		return nil, err
	}
	call := c.call(op, poolPath(req.TimerPoolName))
	call.Body = req

	res, err := c.transport.Put(ctx, call)
	if err != nil {
		return nil, err
	}
	return decode[Item[TimerPool]](op, res)
}

func (c *Client) GetPool(ctx context.Context, req *GetPoolRequest) (*Item[TimerPool], error) {
	const op = "GetTimerPool"
	if req == nil {
		return nil, missingRequest(op)
	}
	if err := required(op, "timerPoolName", req.TimerPoolName); err != nil {
		return nil, err
	}

	res, err := c.transport.Get(ctx, c.call(op, poolPath(req.TimerPoolName)))
	if err != nil {
		return nil, err
	}
	return decode[Item[TimerPool]](op, res)
}

// DeletePool returns the raw transport response; the service sends no body.
func (c *Client) DeletePool(ctx context.Context, req *DeletePoolRequest) (transport.Response, error) {
	const op = "DeleteTimerPool"
	if req == nil {
		return nil, missingRequest(op)
	}
	if err := required(op, "timerPoolName", req.TimerPoolName); err != nil {
		return nil, err
	}
	return c.transport.Delete(ctx, c.call(op, poolPath(req.TimerPoolName)))
}
