// Package transport is the authenticated HTTP layer shared by the timer
// service clients. Implementations live in restytransport and fibertransport.
package transport

import "context"

// Transport issues one signed request per call. Implementations must be safe
// for concurrent use.
type Transport interface {
	Get(ctx context.Context, call Call) (Response, error)
	Post(ctx context.Context, call Call) (Response, error)
	Put(ctx context.Context, call Call) (Response, error)
	Delete(ctx context.Context, call Call) (Response, error)
	Close()
}

type Response interface {
	StatusCode() int
	Body() []byte
}

// Call describes a single operation against the remote service.
type Call struct {
	Service   string
	Operation string
	// Endpoint is substituted for {endpoint} in the URL template.
	Endpoint string
	Path     string
	Query    map[string]string
	// Body is JSON encoded when non-nil. Ignored for GET and DELETE.
	Body any
}

type response struct {
	status int
	body   []byte
}

// NewResponse copies body so the result outlives pooled client buffers.
func NewResponse(status int, body []byte) Response {
	return response{
		status: status,
		body:   append([]byte(nil), body...),
	}
}

func (r response) StatusCode() int { return r.status }
func (r response) Body() []byte    { return r.body }
