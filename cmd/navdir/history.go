package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/navdir"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	path := deps.Config.Database
	if c.DB != "" {
		path = c.DB
	}
	if path == "" && deps.Snapshots == nil {
		err := navdir.Errorf(navdir.EINVALID, "history database required: pass --db or set database in config")
		fmt.Fprintf(deps.Stderr, "error: %s\n", navdir.ErrorMessage(err))
		return err
	}

	snapshots, err := deps.snapshots(path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navdir.ErrorMessage(err))
		return err
	}

	list, err := snapshots.FindSnapshots(deps.Ctx, navdir.SnapshotFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navdir.ErrorMessage(err))
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'navdir crawl --db' to record one.")
		return nil
	}

	for _, s := range list {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d  %d  %s  %s\n",
			s.ID,
			s.CreatedAt.Local().Format(time.DateTime),
			s.Categories,
			s.Sites,
			s.ContentHash,
			s.SourceURL,
		)
	}
	return nil
}
