package restytransport

import (
	"crypto/tls"
	"net"
	"net/http"

	resty "resty.dev/v3"

	"timerpool/pkg/config"
)

func newHTTPTransport(cfg config.Config) *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: cfg.DialTimeout}).DialContext,
		TLSClientConfig:       &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
		TLSHandshakeTimeout:   cfg.TlsTimeout,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		MaxIdleConnsPerHost:   cfg.MaxConnsPerHost,
		MaxIdleConns:          cfg.Size * 2,
		ResponseHeaderTimeout: cfg.ResponseHeaderTimeout,
		TLSNextProto:          map[string]func(string, *tls.Conn) http.RoundTripper{},
	}
}

// URLs are absolute per call because the endpoint host can change between
// calls, so no base URL is set here.
func newRestyClient(cfg config.Config) *resty.Client {
	return resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetTransport(newHTTPTransport(cfg))
}
