package transport_test

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"timerpool/pkg/config"
	"timerpool/pkg/transport"
	"timerpool/pkg/transport/fibertransport"
	"timerpool/pkg/transport/restytransport"
)

func newBenchServer(latency time.Duration) *httptest.Server {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if latency > 0 {
			time.Sleep(latency)
		}
		switch {
		case strings.HasSuffix(r.URL.Path, "/timerPool"):
			_ = json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
		case strings.HasSuffix(r.URL.Path, "/timer"):
			items := make([]map[string]any, 0, 1000)
			for i := 0; i < 1000; i++ {
				items = append(items, map[string]any{
					"timerId":      "t",
					"callbackUrl":  "https://example.com/hook",
					"callbackBody": string(bytes.Repeat([]byte("A"), 200)),
				})
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"items": items})
		default:
			http.NotFound(w, r)
		}
	})
	s := httptest.NewUnstartedServer(h)
	s.Config.TLSNextProto = map[string]func(*http.Server, *tls.Conn, http.Handler){}
	s.StartTLS()
	return s
}

func benchCfg(srv *httptest.Server) config.Config {
	cfg := cfgFor(srv)
	cfg.Size = 8
	cfg.MaxConnsPerHost = 1
	cfg.RequestTimeout = 5 * time.Second
	cfg.DialTimeout = 2 * time.Second
	cfg.TlsTimeout = 2 * time.Second
	return cfg
}

func benchTransport(b *testing.B, name string, tr transport.Transport, path string, par int) {
	b.Helper()
	defer tr.Close()

	ctx := context.Background()
	call := transport.Call{Service: "Gs2Timer", Operation: "Describe", Path: path}

	for i := 0; i < par*2; i++ {
		_, _ = tr.Get(ctx, call)
	}

	b.ReportAllocs()
	b.SetParallelism(par)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			res, err := tr.Get(ctx, call)
			if err != nil {
				b.Fatalf("%s GET %s err=%v", name, path, err)
			}
			_ = len(res.Body())
		}
	})
}

func benchPools(b *testing.B, latency time.Duration, label, path string) {
	srv := newBenchServer(latency)
	defer srv.Close()

	cfg := benchCfg(srv)

	b.Run("resty/"+label, func(b *testing.B) {
		tr, err := restytransport.New(cfg)
		if err != nil {
			b.Fatal(err)
		}
		benchTransport(b, "resty", tr, path, cfg.Size)
	})

	b.Run("fiber/"+label, func(b *testing.B) {
		tr, err := fibertransport.New(cfg)
		if err != nil {
			b.Fatal(err)
		}
		benchTransport(b, "fiber", tr, path, cfg.Size)
	})
}

func BenchmarkTransports_ListPools(b *testing.B) {
	benchPools(b, 200*time.Microsecond, "pools", "/timerPool")
}

func BenchmarkTransports_ListTimersLarge(b *testing.B) {
	benchPools(b, 2*time.Millisecond, "timers", "/timerPool/p/timer")
}
