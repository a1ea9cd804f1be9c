// Package timer is the client for the timer pool service: named pools of
// timers that call back an HTTP endpoint at a given time.
//
// Every method validates its request, issues exactly one call through the
// underlying transport.Transport and decodes the reply. Transport errors,
// including *transport.StatusError, are returned unchanged.
package timer

import (
	"strconv"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"

	"timerpool/pkg/config"
	"timerpool/pkg/transport"
	"timerpool/pkg/transport/fibertransport"
	"timerpool/pkg/transport/restytransport"
)

// ServiceName identifies the timer service to the transport and the signer.
const ServiceName = "Gs2Timer"

type Client struct {
	transport transport.Transport
	endpoint  atomic.Pointer[string]
}

// New wraps an existing transport. The endpoint host starts at
// config.DefaultEndpoint.
func New(t transport.Transport) *Client {
	c := &Client{transport: t}
	c.SetEndpoint(config.DefaultEndpoint)
	return c
}

// NewWithConfig builds a client over the transport pool named by
// cfg.Transport.
func NewWithConfig(cfg config.Config, opts ...transport.Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t, err := newTransport(cfg, opts...)
	if err != nil {
		return nil, err
	}
	c := New(t)
	c.SetEndpoint(cfg.Endpoint)
	return c, nil
}

func newTransport(cfg config.Config, opts ...transport.Option) (transport.Transport, error) {
	switch cfg.Transport {
	case config.TransportFiber:
		return fibertransport.New(cfg, opts...)
	case config.TransportResty, "":
		return restytransport.New(cfg, opts...)
	default:
		return nil, errors.Newf("unknown transport %q", cfg.Transport)
	}
}

// Endpoint returns the host name currently substituted into the service URL.
func (c *Client) Endpoint() string { return *c.endpoint.Load() }

// SetEndpoint overrides the endpoint host for subsequent calls. Calls already
// in flight keep the value they started with. Meant for debugging.
func (c *Client) SetEndpoint(endpoint string) {
	c.endpoint.Store(&endpoint)
}

func (c *Client) Close() { c.transport.Close() }

func (c *Client) call(operation, path string) transport.Call {
	return transport.Call{
		Service:   ServiceName,
		Operation: operation,
		Endpoint:  c.Endpoint(),
		Path:      path,
	}
}

func poolPath(name string) string { return "/timerPool/" + name }

func timersPath(pool string) string { return poolPath(pool) + "/timer" }

func timerPath(pool, id string) string { return timersPath(pool) + "/" + id }

func pageQuery(pageToken *string, limit *int) map[string]string {
	q := map[string]string{}
	if pageToken != nil {
		q["pageToken"] = *pageToken
	}
	if limit != nil {
		q["limit"] = strconv.Itoa(*limit)
	}
	return q
}

func decode[T any](operation string, res transport.Response) (*T, error) {
	out := new(T)
	if len(res.Body()) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(res.Body(), out); err != nil {
		return nil, errors.Wrapf(err, "%s: decode response", operation)
	}
	return out, nil
}
