// Package fibertransport implements transport.Transport on a round-robin
// pool of gofiber clients backed by fasthttp.
package fibertransport

import (
	"context"
	"net/http"
	"time"

	fibercli "github.com/gofiber/fiber/v3/client"

	"timerpool/pkg/config"
	"timerpool/pkg/transport"
)

var _ transport.Transport = (*ClientPool)(nil)

type ClientPool struct {
	base    *transport.Base
	clients *transport.RoundRobin[*fibercli.Client]
}

func New(cfg config.Config, opts ...transport.Option) (*ClientPool, error) {
	if cfg.Size <= 0 {
		cfg.Size = config.DefaultConfig().Size
	}
	base, err := transport.NewBase("fiber", cfg, opts...)
	if err != nil {
		return nil, err
	}

	cs := make([]*fibercli.Client, 0, cfg.Size)
	for i := 0; i < cfg.Size; i++ {
		cs = append(cs, newFiberClient(cfg))
	}
	return &ClientPool{base: base, clients: transport.NewRoundRobin(cs)}, nil
}

func (p *ClientPool) Get(ctx context.Context, call transport.Call) (transport.Response, error) {
	return p.do(ctx, http.MethodGet, call)
}

func (p *ClientPool) Post(ctx context.Context, call transport.Call) (transport.Response, error) {
	return p.do(ctx, http.MethodPost, call)
}

func (p *ClientPool) Put(ctx context.Context, call transport.Call) (transport.Response, error) {
	return p.do(ctx, http.MethodPut, call)
}

func (p *ClientPool) Delete(ctx context.Context, call transport.Call) (transport.Response, error) {
	return p.do(ctx, http.MethodDelete, call)
}

func (p *ClientPool) do(ctx context.Context, method string, call transport.Call) (transport.Response, error) {
	headers, requestID := p.base.Headers(call)
	cfg := fibercli.Config{
		Ctx:    ctx,
		Header: headers,
		Param:  call.Query,
	}
	if call.Body != nil && method != http.MethodGet && method != http.MethodDelete {
		cfg.Body = call.Body
	}

	c := p.clients.Next()
	url := p.base.URL(call)
	start := time.Now()

	var (
		res *fibercli.Response
		err error
	)
	switch method {
	case http.MethodPost:
		res, err = c.Post(url, cfg)
	case http.MethodPut:
		res, err = c.Put(url, cfg)
	case http.MethodDelete:
		res, err = c.Delete(url, cfg)
	default:
		res, err = c.Get(url, cfg)
	}
	if err != nil {
		return p.base.Finish(call, method, requestID, start, nil, err)
	}
	defer res.Close()
	return p.base.Finish(call, method, requestID, start, transport.NewResponse(res.StatusCode(), res.Body()), nil)
}

// Close is a no-op: fasthttp clients hold no resources that need releasing.
func (p *ClientPool) Close() {}
