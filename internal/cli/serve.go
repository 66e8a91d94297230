package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/squaremap/pkg/pipeline"
	"github.com/matzehuels/squaremap/pkg/server"
	"github.com/matzehuels/squaremap/pkg/store"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		mongoURI string
		noCache  bool
		lf       layoutFlags
		rf       renderFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the treemap pipeline over HTTP",
		Long: `Serve the treemap pipeline over HTTP.

Endpoints:
  GET  /healthz
  POST /v1/layouts                        compute and store a layout
  GET  /v1/layouts/{id}                   fetch a stored layout
  GET  /v1/layouts/{id}/render.{format}   render a stored layout
  POST /v1/render?format=svg              lay out and render in one call

Layouts are stored in MongoDB when --mongo-uri (or server.mongo_uri) is
set, otherwise in memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				c.Config.Server.Addr = addr
			}
			if cmd.Flags().Changed("mongo-uri") {
				c.Config.Server.MongoURI = mongoURI
			}
			defaults := c.baseOptions()
			lf.apply(cmd, &defaults)
			rf.apply(cmd, &defaults)
			if err := defaults.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), defaults, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI for layout storage")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	lf.register(cmd)
	rf.register(cmd)

	return cmd
}

func (c *CLI) runServe(ctx context.Context, defaults pipeline.Options, noCache bool) error {
	cfg := c.Config.Server

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := server.New(server.Config{
		Runner:    runner,
		Store:     st,
		Defaults:  &defaults,
		LayoutTTL: cfg.LayoutTTL.Duration,
		Logger:    c.Logger,
	})

	printSuccess("Serving on %s", cfg.Addr)
	printKeyValue("canvas", fmt.Sprintf("%gx%g", defaults.Width, defaults.Height))
	printKeyValue("formats", fmt.Sprintf("%v", defaults.Formats))
	return srv.ListenAndServe(ctx, cfg.Addr)
}

func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	cfg := c.Config.Server
	if cfg.MongoURI == "" {
		printWarning("No mongo_uri configured; layouts are kept in memory")
		return store.NewMemoryStore(), nil
	}
	st, err := store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("open layout store: %w", err)
	}
	printKeyValue("store", "mongodb/"+cfg.MongoDatabase)
	return st, nil
}
