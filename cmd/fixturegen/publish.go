package main

import (
	"context"
	"fmt"

	"github.com/Sternrassler/rest-paging-fixtures/pkg/fixture"
	"github.com/Sternrassler/rest-paging-fixtures/pkg/publish"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func (a *app) redisClient(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: a.settings.RedisAddr,
		DB:   a.settings.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", a.settings.RedisAddr, err)
	}
	return client, nil
}

func (a *app) publisher(client *redis.Client) *publish.Publisher {
	cfg := publish.DefaultConfig()
	cfg.TTL = a.settings.TTL
	return publish.NewPublisher(client, cfg)
}

func (a *app) namespace(cfg fixture.Config) string {
	if a.nsFlag != "" {
		return a.nsFlag
	}
	if a.settings.Namespace != "" {
		return a.settings.Namespace
	}
	return publish.ConfigNamespace(cfg)
}

func newPublishCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Build a dataset and publish it to Redis",
		Long: `publish writes every post, page, postlet and pagelet as its own
Redis document keyed by REST path. The namespace defaults to one derived
from the build configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := a.fixtureConfig(cmd.Flags())
			if err != nil {
				return err
			}
			ds, err := fixture.NewBuilder(a.logger).Build(cfg)
			if err != nil {
				return err
			}

			client, err := a.redisClient(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			ns := a.namespace(cfg)
			n, err := a.publisher(client).Publish(ctx, ns, ds)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "published %d documents under %s\n", n, ns)
			return nil
		},
	}

	buildFlags(cmd.Flags())
	cmd.Flags().StringVar(&a.nsFlag, "namespace", "", "namespace (default derived from configuration)")

	return cmd
}

func newUnpublishCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpublish",
		Short: "Remove a published dataset from Redis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := a.fixtureConfig(cmd.Flags())
			if err != nil {
				return err
			}

			client, err := a.redisClient(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			ns := a.namespace(cfg)
			n, err := a.publisher(client).Unpublish(ctx, ns)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %d documents under %s\n", n, ns)
			return nil
		},
	}

	buildFlags(cmd.Flags())
	cmd.Flags().StringVar(&a.nsFlag, "namespace", "", "namespace (default derived from configuration)")

	return cmd
}
