// Package restytransport implements transport.Transport on a round-robin
// pool of resty clients.
package restytransport

import (
	"context"
	"net/http"
	"sync"
	"time"

	resty "resty.dev/v3"

	"timerpool/pkg/config"
	"timerpool/pkg/transport"
)

var _ transport.Transport = (*ClientPool)(nil)

type ClientPool struct {
	base      *transport.Base
	clients   *transport.RoundRobin[*resty.Client]
	closeOnce sync.Once
}

func New(cfg config.Config, opts ...transport.Option) (*ClientPool, error) {
	if cfg.Size <= 0 {
		cfg.Size = config.DefaultConfig().Size
	}
	base, err := transport.NewBase("resty", cfg, opts...)
	if err != nil {
		return nil, err
	}

	cs := make([]*resty.Client, 0, cfg.Size)
	for i := 0; i < cfg.Size; i++ {
		cs = append(cs, newRestyClient(cfg))
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
	req := p.clients.Next().R().
		SetContext(ctx).
		SetHeaders(headers).
		SetQueryParams(call.Query)
	if call.Body != nil && method != http.MethodGet && method != http.MethodDelete {
		req.SetBody(call.Body)
	}

	start := time.Now()
	res, err := req.Execute(method, p.base.URL(call))
	if err != nil {
		return p.base.Finish(call, method, requestID, start, nil, err)
	}
	return p.base.Finish(call, method, requestID, start, transport.NewResponse(res.StatusCode(), res.Bytes()), nil)
}

func (p *ClientPool) Close() {
	p.closeOnce.Do(func() {
		for _, c := range p.clients.All() {
			_ = c.Close()
		}
	})
}
