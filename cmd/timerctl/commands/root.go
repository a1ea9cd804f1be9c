// Package commands implements the timerctl command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"timerpool/pkg/config"
	"timerpool/pkg/logger"
	"timerpool/pkg/timer"
	"timerpool/pkg/transport"
)

// clientFactory is swapped in tests to avoid real network calls.
var clientFactory = func(cfg config.Config, log *zap.Logger) (*timer.Client, error) {
	return timer.NewWithConfig(cfg, transport.WithLogger(log))
}

func NewRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "timerctl",
		Short:         "Manage timer pools and timers on the timer service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfigFile(v)
		},
	}

	def := config.DefaultConfig()
	f := root.PersistentFlags()
	f.String("config", "", "config file (yaml, toml or json)")
	f.String("region", "", "service region")
	f.String("client-id", "", "client id")
	f.String("client-secret", "", "client secret (base64)")
	f.String("endpoint", def.Endpoint, "endpoint host name")
	f.String("url-template", def.URLTemplate, "service URL template")
	f.String("transport", def.Transport, "HTTP stack: resty or fiber")
	f.Int("pool-size", def.Size, "number of pooled clients")
	f.Int("max-conns-per-host", def.MaxConnsPerHost, "connections per host per pooled client")
	f.Duration("request-timeout", def.RequestTimeout, "request timeout")
	f.Duration("dial-timeout", def.DialTimeout, "dial timeout")
	f.Duration("tls-timeout", def.TlsTimeout, "TLS handshake timeout")
	f.Duration("idle-conn-timeout", def.IdleConnTimeout, "idle connection timeout")
	f.Duration("response-header-timeout", def.ResponseHeaderTimeout, "response header timeout, 0 for none")
	f.Bool("insecure-skip-verify", def.InsecureSkipVerify, "skip TLS verification")
	f.Bool("json-log", false, "log as JSON")
	f.BoolP("verbose", "v", false, "log every request")
	_ = v.BindPFlags(f)

	v.SetEnvPrefix("TIMER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newPoolCommand(v), newTimerCommand(v))
	return root
}

func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

func loadConfigFile(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	return nil
}

// configFrom layers TIMER_* variables over the defaults, then every key
// viper holds from a changed flag, the environment or the config file.
func configFrom(v *viper.Viper) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	for key, dst := range map[string]*string{
		"region":        &cfg.Region,
		"client-id":     &cfg.ClientID,
		"client-secret": &cfg.ClientSecret,
		"endpoint":      &cfg.Endpoint,
		"url-template":  &cfg.URLTemplate,
		"transport":     &cfg.Transport,
	} {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	for key, dst := range map[string]*int{
		"pool-size":          &cfg.Size,
		"max-conns-per-host": &cfg.MaxConnsPerHost,
	} {
		if v.IsSet(key) {
			*dst = v.GetInt(key)
		}
	}
	for key, dst := range map[string]*time.Duration{
		"request-timeout":         &cfg.RequestTimeout,
		"dial-timeout":            &cfg.DialTimeout,
		"tls-timeout":             &cfg.TlsTimeout,
		"idle-conn-timeout":       &cfg.IdleConnTimeout,
		"response-header-timeout": &cfg.ResponseHeaderTimeout,
	} {
		if v.IsSet(key) {
			*dst = v.GetDuration(key)
		}
	}
	if v.IsSet("insecure-skip-verify") {
		cfg.InsecureSkipVerify = v.GetBool("insecure-skip-verify")
	}
	return cfg, cfg.Validate()
}

// withClient builds a client from the resolved configuration, runs fn and
// prints its result as indented JSON.
func withClient(cmd *cobra.Command, v *viper.Viper, fn func(ctx context.Context, c *timer.Client) (any, error)) error {
	cfg, err := configFrom(v)
	if err != nil {
		return err
	}
	level := zapcore.WarnLevel
	if v.GetBool("verbose") {
		level = zapcore.DebugLevel
	}
	log, err := logger.New(v.GetBool("json-log"), level)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	defer func() { _ = log.Sync() }()

	c, err := clientFactory(cfg, log)
	if err != nil {
		return err
	}
	defer c.Close()

	out, err := fn(cmd.Context(), c)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	if r, ok := v.(transport.Response); ok {
		v = map[string]int{"status": r.StatusCode()}
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode output")
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// optString returns nil unless the flag was given on the command line.
func optString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	s, _ := cmd.Flags().GetString(name)
	return &s
}

func optInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	n, _ := cmd.Flags().GetInt(name)
	return &n
}
