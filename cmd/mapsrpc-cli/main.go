// Command mapsrpc-cli decodes maps RPC responses from files, stdin or a
// single fetched URL.
//
// Usage:
//
//	mapsrpc-cli place response.txt -o table
//	cat page.txt | mapsrpc-cli reviews --lang th
//	mapsrpc-cli process --url "https://www.google.com/maps/preview/place?..." --lang en
//	mapsrpc-cli classify "ร้านนี้อร่อยมาก"
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Alfex4936/mapsrpc/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "mapsrpc-cli:", err)
		stop()
		os.Exit(1)
	}
}
