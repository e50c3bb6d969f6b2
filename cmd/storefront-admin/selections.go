package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/target/storefront-ui/config"
	redisadapter "github.com/target/storefront-ui/internal/adapters/redis"
	"github.com/target/storefront-ui/internal/bootstrap"
	"github.com/target/storefront-ui/internal/util"
)

const (
	scanBatch        = 100
	selectionTimeout = 2 * time.Minute
)

type listSelectionsOptions struct {
	Scope string
	Limit int
}

type clearSelectionsOptions struct {
	Scope  string
	All    bool
	DryRun bool
	Yes    bool
}

func parseListSelectionsFlags(args []string) (listSelectionsOptions, error) {
	fs := flag.NewFlagSet("list-selections", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts listSelectionsOptions
	fs.StringVar(&opts.Scope, "scope", "", "Show the slots of one page-load scope")
	fs.IntVar(&opts.Limit, "limit", 50, "Maximum number of scopes to print")
	if err := fs.Parse(args); err != nil {
		return listSelectionsOptions{}, err
	}

	opts.Scope = strings.TrimSpace(opts.Scope)
	if opts.Limit <= 0 {
		return listSelectionsOptions{}, errors.New("--limit must be positive")
	}
	return opts, nil
}

func parseClearSelectionsFlags(args []string) (clearSelectionsOptions, error) {
	fs := flag.NewFlagSet("clear-selections", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts clearSelectionsOptions
	fs.StringVar(&opts.Scope, "scope", "", "Page-load scope to clear (required unless --all)")
	fs.BoolVar(&opts.All, "all", false, "Clear every scope")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Print actions without executing")
	fs.BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return clearSelectionsOptions{}, err
	}

	opts.Scope = strings.TrimSpace(opts.Scope)
	switch {
	case opts.All && opts.Scope != "":
		return clearSelectionsOptions{}, errors.New("--scope and --all are mutually exclusive")
	case !opts.All && opts.Scope == "":
		return clearSelectionsOptions{}, errors.New("--scope is required unless --all is set")
	}
	return opts, nil
}

// connectSelectionRedis fails clearly when scopes are not kept in Redis at all.
//
//nolint:ireturn // see bootstrap.ConnectRedis.
func connectSelectionRedis(cmdCtx *commandContext) (redis.UniversalClient, error) {
	if cmdCtx.Config.Selection.Backend != config.SelectionBackendRedis {
		return nil, fmt.Errorf("selection backend is %q: scopes live inside each storefront process",
			cmdCtx.Config.Selection.Backend)
	}
	return bootstrap.ConnectRedis(cmdCtx.Ctx, bootstrap.RedisOptions{Config: cmdCtx.Config.Redis, Logger: cmdCtx.Logger})
}

func runListSelections(cmdCtx *commandContext, args []string) error {
	opts, err := parseListSelectionsFlags(args)
	if err != nil {
		return err
	}
	client, err := connectSelectionRedis(cmdCtx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("redis close failed", "error", closeErr)
		}
	}()

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, selectionTimeout)
	defer cancel()

	prefix := cmdCtx.Config.Selection.KeyPrefix
	if opts.Scope != "" {
		return printScopeSlots(ctx, cmdCtx.Out, client, prefix, opts.Scope)
	}
	return printScopes(ctx, cmdCtx.Out, client, prefix, opts.Limit)
}

type scopeRow struct {
	Scope string
	Slots []string
	TTL   time.Duration
}

func scanScopes(ctx context.Context, client redis.UniversalClient, prefix string, limit int) ([]scopeRow, int, error) {
	iter := client.Scan(ctx, 0, prefix+"*", scanBatch).Iterator()
	rows := make([]scopeRow, 0, limit)
	total := 0
	for iter.Next(ctx) {
		total++
		if len(rows) >= limit {
			continue
		}
		key := iter.Val()
		slots, err := client.HKeys(ctx, key).Result()
		if err != nil {
			return nil, 0, fmt.Errorf("read slots of %s: %w", key, err)
		}
		ttl, err := client.TTL(ctx, key).Result()
		if err != nil {
			return nil, 0, fmt.Errorf("read ttl of %s: %w", key, err)
		}
		sort.Strings(slots)
		rows = append(rows, scopeRow{Scope: strings.TrimPrefix(key, prefix), Slots: slots, TTL: ttl})
	}
	if err := iter.Err(); err != nil {
		return nil, 0, fmt.Errorf("redis scan: %w", err)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Scope < rows[j].Scope })
	return rows, total, nil
}

func printScopes(ctx context.Context, out io.Writer, client redis.UniversalClient, prefix string, limit int) error {
	rows, total, err := scanScopes(ctx, client, prefix, limit)
	if err != nil {
		return err
	}
	if total == 0 {
		return writeln(out, "(no selection scopes)")
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if err = writef(tw, "SCOPE\tSLOTS\tTTL\n"); err != nil {
		return err
	}
	for _, row := range rows {
		if err = writef(tw, "%s\t%s\t%s\n", row.Scope, strings.Join(row.Slots, ","), util.FormatTTL(row.TTL)); err != nil {
			return err
		}
	}
	if err = tw.Flush(); err != nil {
		return err
	}
	if total > len(rows) {
		return writef(out, "\nShowing %d of %d scopes\n", len(rows), total)
	}
	return writef(out, "\nTotal scopes: %d\n", total)
}

func printScopeSlots(ctx context.Context, out io.Writer, client redis.UniversalClient, prefix, scope string) error {
	values, err := client.HGetAll(ctx, prefix+scope).Result()
	if err != nil {
		return fmt.Errorf("read scope %s: %w", scope, err)
	}
	if len(values) == 0 {
		return writef(out, "scope %s is empty or expired\n", scope)
	}

	slots := make([]string, 0, len(values))
	for slot := range values {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	for _, slot := range slots {
		if err = writef(out, "%s: %s\n", slot, values[slot]); err != nil {
			return err
		}
	}
	return nil
}

func runClearSelections(cmdCtx *commandContext, args []string) error {
	opts, err := parseClearSelectionsFlags(args)
	if err != nil {
		return err
	}
	if !opts.DryRun && !opts.Yes {
		target := "scope " + opts.Scope
		if opts.All {
			target = "ALL scopes; shoppers mid-flow lose their selections"
		}
		if confirmErr := confirmAction(cmdCtx.Out, cmdCtx.In, "About to clear selection data for "+target+"."); confirmErr != nil {
			return confirmErr
		}
	}

	client, err := connectSelectionRedis(cmdCtx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("redis close failed", "error", closeErr)
		}
	}()

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, selectionTimeout)
	defer cancel()

	cleared, err := clearSelections(ctx, client, cmdCtx.Config.Selection, opts)
	if err != nil {
		return err
	}
	if opts.DryRun {
		return writef(cmdCtx.Out, "dry run: %d scope(s) would be cleared\n", cleared)
	}
	cmdCtx.Logger.Info("clear selections complete", "scopes", cleared)
	return writef(cmdCtx.Out, "cleared %d scope(s)\n", cleared)
}

// clearSelections deletes one scope through the selection backend, or every key under the prefix.
func clearSelections(
	ctx context.Context,
	client redis.UniversalClient,
	cfg config.SelectionConfig,
	opts clearSelectionsOptions,
) (int, error) {
	if !opts.All {
		n, err := client.Exists(ctx, cfg.KeyPrefix+opts.Scope).Result()
		if err != nil {
			return 0, fmt.Errorf("check scope %s: %w", opts.Scope, err)
		}
		if opts.DryRun || n == 0 {
			return int(n), nil
		}
		backend := redisadapter.NewSelectionBackend(redisadapter.SelectionBackendOptions{
			Client: client,
			Prefix: cfg.KeyPrefix,
			TTL:    cfg.TTL,
		})
		if err = backend.Clear(ctx, opts.Scope); err != nil {
			return 0, fmt.Errorf("clear scope %s: %w", opts.Scope, err)
		}
		return int(n), nil
	}

	iter := client.Scan(ctx, 0, cfg.KeyPrefix+"*", scanBatch).Iterator()
	batch := make([]string, 0, scanBatch)
	total := 0
	flush := func() error {
		if len(batch) == 0 || opts.DryRun {
			batch = batch[:0]
			return nil
		}
		// One DEL per key keeps cluster deployments clear of cross-slot errors.
		pipe := client.Pipeline()
		for _, key := range batch {
			pipe.Del(ctx, key)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("delete scopes: %w", err)
		}
		batch = batch[:0]
		return nil
	}
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		total++
		if len(batch) == scanBatch {
			if err := flush(); err != nil {
				return 0, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("redis scan: %w", err)
	}
	if err := flush(); err != nil {
		return 0, err
	}
	return total, nil
}
