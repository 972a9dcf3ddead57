package main

import (
	"context"
	"os"

	"github.com/wheelibin/huecli/internal/cli"
)

func main() {
	app := &cli.App{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	os.Exit(app.Run(context.Background(), os.Args[1:]))
}
