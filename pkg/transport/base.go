package transport

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"timerpool/pkg/auth"
	"timerpool/pkg/config"
	"timerpool/pkg/logger"
	"timerpool/pkg/metrics"
)

const HeaderRequestID = "X-Request-ID"

type Option func(*options)

type options struct {
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func WithLogger(l *zap.Logger) Option { return func(o *options) { o.log = l } }

func WithMetrics(m *metrics.Metrics) Option { return func(o *options) { o.metrics = m } }

// WithClock overrides the time used for request signatures.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

// Base holds what every implementation shares: signing, endpoint resolution,
// logging and metrics. Implementations only move bytes.
type Base struct {
	cfg     config.Config
	signer  *auth.Signer
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewBase(name string, cfg config.Config, opts ...Option) (*Base, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	signer, err := auth.NewSigner(cfg.ClientID, cfg.ClientSecret)
	if err != nil {
		return nil, err
	}
	if cfg.URLTemplate == "" {
		cfg.URLTemplate = config.DefaultURLTemplate
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = config.DefaultEndpoint
	}
	return &Base{
		cfg:     cfg,
		signer:  signer,
		log:     logger.OrNop(o.log).With(zap.String(logger.FieldClient, name)),
		metrics: o.metrics,
		now:     o.now,
	}, nil
}

// ResolveURL fills the {endpoint} and {region} placeholders of tmpl.
func ResolveURL(tmpl, endpoint, region string) string {
	r := strings.NewReplacer("{endpoint}", endpoint, "{region}", region)
	return strings.TrimRight(r.Replace(tmpl), "/")
}

func (b *Base) URL(call Call) string {
	endpoint := call.Endpoint
	if endpoint == "" {
		endpoint = b.cfg.Endpoint
	}
	return ResolveURL(b.cfg.URLTemplate, endpoint, b.cfg.Region) + call.Path
}

// Headers returns the signed header set and the generated request id.
func (b *Base) Headers(call Call) (map[string]string, string) {
	h := b.signer.Headers(call.Service, call.Operation, b.now())
	id := uuid.NewString()
	h[HeaderRequestID] = id
	h["Accept"] = "application/json"
	if call.Body != nil {
		h["Content-Type"] = "application/json"
	}
	return h, id
}

// Finish records the outcome of a round trip and turns non-2xx statuses into
// a *StatusError. Network errors are returned as is.
func (b *Base) Finish(call Call, method, requestID string, start time.Time, res Response, err error) (Response, error) {
	elapsed := time.Since(start)
	fields := []zap.Field{
		zap.String(logger.FieldService, call.Service),
		zap.String(logger.FieldOperation, call.Operation),
		zap.String(logger.FieldMethod, method),
		zap.String(logger.FieldPath, call.Path),
		zap.String(logger.FieldRequestID, requestID),
		zap.Int64(logger.FieldDuration, elapsed.Milliseconds()),
	}

	if err != nil {
		b.metrics.Observe(call.Service, call.Operation, method, 0, elapsed)
		b.log.Warn("request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	status := res.StatusCode()
	b.metrics.Observe(call.Service, call.Operation, method, status, elapsed)
	fields = append(fields, zap.Int(logger.FieldStatus, status))

	if status < 200 || status > 299 {
		b.log.Warn("unexpected status", fields...)
		return nil, &StatusError{
			Service:    call.Service,
			Operation:  call.Operation,
			StatusCode: status,
			Body:       res.Body(),
		}
	}
	b.log.Debug("request done", fields...)
	return res, nil
}
