// Command fieldnorm normalizes whitespace, email, phone and name fields of
// JSON records.
//
//	fieldnorm -config fieldnorm.toml -steps email,phone -in people.jsonl -format jsonl
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
