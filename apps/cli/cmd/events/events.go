package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	eventsrepo "github.com/zenGate-Global/palmyra-events/domains/events/be/repo"
	eventsservice "github.com/zenGate-Global/palmyra-events/domains/events/be/service"
	platformlogging "github.com/zenGate-Global/palmyra-events/platform/go/logging"
	"github.com/zenGate-Global/palmyra-events/platform/go/persistence"
	"github.com/zenGate-Global/palmyra-events/platform/go/requesttrace"
	"github.com/zenGate-Global/palmyra-events/platform/go/seed"
)

// importRequestID tags notifications and logs emitted by seed imports.
const importRequestID = "eventctl-import"

type options struct {
	databaseURL   string
	logLevel      string
	writeAttempts int
}

// Command groups catalog operations that run against the database directly.
func Command() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Catalog operations (import, get, similar)",
	}
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection string")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	cmd.PersistentFlags().IntVar(&opts.writeAttempts, "write-attempts", 3, "attempts per write when a slug is claimed concurrently")

	cmd.AddCommand(importCommand(opts), getCommand(opts), similarCommand(opts))
	return cmd
}

func importCommand(opts *options) *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	c := &cobra.Command{
		Use:   "import",
		Short: "Import events from a YAML seed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open seed file: %w", err)
			}
			defer f.Close()

			doc, err := seed.Load(f, nil)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d events valid\n", len(doc.Events))
				return nil
			}

			return withService(cmd.Context(), opts, func(ctx context.Context, svc eventsservice.Service) error {
				return runImport(ctx, svc, doc, cmd.OutOrStdout())
			})
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "seed file (YAML)")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing")
	_ = c.MarkFlagRequired("file")
	return c
}

func getCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <slug>",
		Short: "Print the event with the given slug as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), opts, func(ctx context.Context, svc eventsservice.Service) error {
				return runGet(ctx, svc, args[0], cmd.OutOrStdout())
			})
		},
	}
}

func similarCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "similar <slug>",
		Short: "Print events sharing a tag with the given event as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), opts, func(ctx context.Context, svc eventsservice.Service) error {
				return printJSON(cmd.OutOrStdout(), svc.GetSimilarEventsBySlug(ctx, args[0]))
			})
		},
	}
}

// runImport creates every seed event through the regular write path, so slugs and
// date/time values are derived exactly as for API writes. Failed rows are reported and
// skipped; the returned error summarizes them.
func runImport(ctx context.Context, svc eventsservice.Service, doc seed.Document, out io.Writer) error {
	audit := requesttrace.System(importRequestID)

	failed := 0
	for i, e := range doc.Events {
		created, err := svc.Create(ctx, audit, toCreateInput(e))
		if err != nil {
			failed++
			fmt.Fprintf(out, "event %d (%q): %v\n", i+1, e.Title, err)
			continue
		}
		fmt.Fprintf(out, "created %s\n", created.Slug)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d events failed to import", failed, len(doc.Events))
	}
	return nil
}

func runGet(ctx context.Context, svc eventsservice.Service, slug string, out io.Writer) error {
	event, found, err := svc.GetEventBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("event %q not found", slug)
	}
	return printJSON(out, event)
}

func toCreateInput(e seed.Event) eventsservice.CreateInput {
	return eventsservice.CreateInput{
		Title:       e.Title,
		Description: e.Description,
		Overview:    e.Overview,
		Image:       e.Image,
		Venue:       e.Venue,
		Location:    e.Location,
		Date:        e.Date,
		Time:        e.Time,
		Mode:        e.Mode,
		Audience:    e.Audience,
		Agenda:      e.Agenda,
		Organizer:   e.Organizer,
		Tags:        e.Tags,
	}
}

func withService(ctx context.Context, opts *options, fn func(context.Context, eventsservice.Service) error) error {
	if opts.databaseURL == "" {
		return errors.New("--database-url or DATABASE_URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := platformlogging.NewLogger(platformlogging.Config{
		Component: "eventctl",
		Level:     opts.logLevel,
		Output:    os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	pool, err := persistence.NewPool(ctx, persistence.PoolConfig{ConnString: opts.databaseURL})
	if err != nil {
		return fmt.Errorf("init pool: %w", err)
	}
	defer persistence.ClosePool(pool)

	store, err := persistence.NewEventStore(ctx, pool)
	if err != nil {
		return fmt.Errorf("init event store: %w", err)
	}

	svc := eventsservice.New(eventsrepo.NewPostgresRepository(store), eventsservice.Deps{
		Logger:        logger.With(zap.String("request_id", importRequestID)),
		WriteAttempts: opts.writeAttempts,
	})
	return fn(ctx, svc)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
