package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/yandexplus/yplus-go/pkg/hub"
	"github.com/yandexplus/yplus-go/pkg/user"
)

// runDemo joins the configured users, publishes the catalog, prints the
// first user's listing and runs the configured indexes as that user.
// Indexes that do not exist are reported and skipped.
func runDemo(ctx context.Context, h *hub.Hub, cfg *Config, out io.Writer) error {
	ids := cfg.Allocator()

	users := make([]*user.User, 0, cfg.UserCount())
	for i, n := 0, cfg.UserCount(); i < n; i++ {
		users = append(users, user.New(h, user.WithIDs(ids)))
	}
	defer func() {
		for _, u := range users {
			u.Close()
		}
	}()

	h.Notify()

	if len(users) == 0 {
		return nil
	}
	first := users[0]

	fmt.Fprintf(out, "User %s has the following commands available:\n", first.ID())
	for _, e := range first.List() {
		fmt.Fprintf(out, "\t%s\n", e)
	}

	for _, index := range cfg.Demo.Run {
		res, err := first.Run(ctx, index)
		switch {
		case errors.Is(err, user.ErrNoSuchCommand):
			fmt.Fprintf(out, "Command #%d does not exist!\n", index)
		case err != nil:
			return err
		default:
			fmt.Fprintf(out, "#%d %s: %s\n", index, res.Command, res.Output)
		}
	}
	return nil
}
