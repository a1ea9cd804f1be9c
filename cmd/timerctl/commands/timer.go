package commands

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timerpool/pkg/timer"
)

func newTimerCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Manage timers inside a pool",
	}

	list := &cobra.Command{
		Use:   "list POOL",
		Short: "List the timers of a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &timer.ListTimersRequest{
				TimerPoolName: args[0],
				PageToken:     optString(cmd, "page-token"),
				Limit:         optInt(cmd, "limit"),
			}
			return withClient(cmd, v, func(ctx context.Context, c *timer.Client) (any, error) {
				return c.ListTimers(ctx, req)
			})
		},
	}
	list.Flags().String("page-token", "", "continue from this page token")
	list.Flags().Int("limit", 0, "maximum number of timers")

	create := &cobra.Command{
		Use:   "create POOL",
		Short: "Schedule a callback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := createTimerRequest(cmd, args[0])
			if err != nil {
				return err
			}
			return withClient(cmd, v, func(ctx context.Context, c *timer.Client) (any, error) {
				return c.CreateTimer(ctx, req)
			})
		},
	}
	create.Flags().String("method", "", "callback HTTP method (GET, POST, PUT, DELETE)")
	create.Flags().String("url", "", "callback URL")
	create.Flags().String("body", "", "callback body")
	create.Flags().String("at", "", "execute time, RFC 3339")
	create.Flags().Duration("in", 0, "execute after this delay instead of --at")
	create.Flags().Int("retry-max", 0, "maximum callback retries")

	get := &cobra.Command{
		Use:   "get POOL TIMER_ID",
		Short: "Show a timer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, v, func(ctx context.Context, c *timer.Client) (any, error) {
				return c.GetTimer(ctx, &timer.GetTimerRequest{TimerPoolName: args[0], TimerID: args[1]})
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete POOL TIMER_ID",
		Short: "Delete a timer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, v, func(ctx context.Context, c *timer.Client) (any, error) {
				return c.DeleteTimer(ctx, &timer.DeleteTimerRequest{TimerPoolName: args[0], TimerID: args[1]})
			})
		},
	}

	cmd.AddCommand(list, create, get, del)
	return cmd
}

func createTimerRequest(cmd *cobra.Command, pool string) (*timer.CreateTimerRequest, error) {
	req := &timer.CreateTimerRequest{
		TimerPoolName: pool,
		CallbackURL:   optString(cmd, "url"),
		CallbackBody:  optString(cmd, "body"),
		RetryMax:      optInt(cmd, "retry-max"),
	}
	if m := optString(cmd, "method"); m != nil {
		req.CallbackMethod = timer.MethodOf(timer.Method(strings.ToUpper(*m)))
	}

	switch {
	case cmd.Flags().Changed("at") && cmd.Flags().Changed("in"):
		return nil, errors.New("--at and --in are mutually exclusive")
	case cmd.Flags().Changed("at"):
		s, _ := cmd.Flags().GetString("at")
		at, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, errors.Wrap(err, "parse --at")
		}
		req.ExecuteTime = timer.At(at)
	case cmd.Flags().Changed("in"):
		d, _ := cmd.Flags().GetDuration("in")
		req.ExecuteTime = timer.At(time.Now().Add(d))
	}
	return req, nil
}
