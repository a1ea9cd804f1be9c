package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timerpool/pkg/timer"
)

func newPoolCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Manage timer pools",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List timer pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := &timer.ListPoolsRequest{PageToken: optString(cmd, "page-token"), Limit: optInt(cmd, "limit")}
			return withClient(cmd, v, func(ctx context.Context, c *timer.Client) (any, error) {
				return c.ListPools(ctx, req)
			})
		},
	}
	list.Flags().String("page-token", "", "continue from this page token")
	list.Flags().Int("limit", 0, "maximum number of pools")

	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a timer pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &timer.CreatePoolRequest{Name: args[0], Description: optString(cmd, "description")}
			return withClient(cmd, v, func(ctx context.Context, c *timer.Client) (any, error) {
				return c.CreatePool(ctx, req)
			})
		},
	}
	create.Flags().String("description", "", "pool description")

	update := &cobra.Command{
		Use:   "update NAME",
		Short: "Update a timer pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &timer.UpdatePoolRequest{TimerPoolName: args[0], Description: optString(cmd, "description")}
			return withClient(cmd, v, func(ctx context.Context, c *timer.Client) (any, error) {
				return c.UpdatePool(ctx, req)
			})
		},
	}
	update.Flags().String("description", "", "pool description")

	get := &cobra.Command{
		Use:   "get NAME",
		Short: "Show a timer pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, v, func(ctx context.Context, c *timer.Client) (any, error) {
				return c.GetPool(ctx, &timer.GetPoolRequest{TimerPoolName: args[0]})
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a timer pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, v, func(ctx context.Context, c *timer.Client) (any, error) {
				return c.DeletePool(ctx, &timer.DeletePoolRequest{TimerPoolName: args[0]})
			})
		},
	}

	cmd.AddCommand(list, create, update, get, del)
	return cmd
}
