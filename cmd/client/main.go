// Command salesdesk is the terminal client of the sales data service.
//
// Without a subcommand it starts the full-screen UI; "salesdesk repl" starts
// the line-oriented shell instead. Both read the same configuration: defaults,
// then the file given with -c/-config, then the flags listed by -h.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
