package timer

import (
	"context"

	"timerpool/pkg/transport"
)

// ListTimers returns one page of the timers in a pool.
func (c *Client) ListTimers(ctx context.Context, req *ListTimersRequest) (*Page[Timer], error) {
	const op = "DescribeTimer"
	if req == nil {
		return nil, missingRequest(op)
	}
	if err := required(op, "timerPoolName", req.TimerPoolName); err != nil {
		return nil, err
	}
	call := c.call(op, timersPath(req.TimerPoolName))
	call.Query = pageQuery(req.PageToken, req.Limit)

	res, err := c.transport.Get(ctx, call)
	if err != nil {
		return nil, err
	}
	return decode[Page[Timer]](op, res)
}

// CreateTimer schedules a callback. Only the pool name is checked here; the
// service validates the callback fields.
func (c *Client) CreateTimer(ctx context.Context, req *CreateTimerRequest) (*Item[Timer], error) {
	const op = "CreateTimer"
	if req == nil {
		return nil, missingRequest(op)
	}
	if err := required(op, "timerPoolName", req.TimerPoolName); err != nil {
		return nil, err
	}
	call := c.call(op, timersPath(req.TimerPoolName))
	call.Body = req

	res, err := c.transport.Post(ctx, call)
	if err != nil {
		return nil, err
	}
	return decode[Item[Timer]](op, res)
}

func (c *Client) GetTimer(ctx context.Context, req *GetTimerRequest) (*Item[Timer], error) {
	const op = "GetTimer"
	if req == nil {
		return nil, missingRequest(op)
	}
	if err := required(op, "timerPoolName", req.TimerPoolName, "timerId", req.TimerID); err != nil {
		return nil, err
	}

	res, err := c.transport.Get(ctx, c.call(op, timerPath(req.TimerPoolName, req.TimerID)))
	if err != nil {
		return nil, err
	}
	return decode[Item[Timer]](op, res)
}

func (c *Client) DeleteTimer(ctx context.Context, req *DeleteTimerRequest) (transport.Response, error) {
	const op = "DeleteTimer"
	if req == nil {
		return nil, missingRequest(op)
	}
	if err := required(op, "timerPoolName", req.TimerPoolName, "timerId", req.TimerID); err != nil {
		return nil, err
	}
	return c.transport.Delete(ctx, c.call(op, timerPath(req.TimerPoolName, req.TimerID)))
}
