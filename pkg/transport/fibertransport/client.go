package fibertransport

import (
	"crypto/tls"
	"net"

	fibercli "github.com/gofiber/fiber/v3/client"
	"github.com/valyala/fasthttp"

	"timerpool/pkg/config"
)

func newFastHTTPClient(cfg config.Config) *fasthttp.Client {
	return &fasthttp.Client{
		Dial:                func(addr string) (net.Conn, error) { return fasthttp.DialTimeout(addr, cfg.DialTimeout) },
		TLSConfig:           &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
		ReadTimeout:         cfg.RequestTimeout,
		WriteTimeout:        cfg.RequestTimeout,
		MaxIdleConnDuration: cfg.IdleConnTimeout,
		MaxConnsPerHost:     cfg.MaxConnsPerHost,
		MaxConnWaitTimeout:  cfg.RequestTimeout,
	}
}

func newFiberClient(cfg config.Config) *fibercli.Client {
	return fibercli.NewWithClient(newFastHTTPClient(cfg)).SetTimeout(cfg.RequestTimeout)
}
