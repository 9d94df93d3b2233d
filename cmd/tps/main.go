package main

import (
	"context"
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := buildApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "tps: %v\n", err)
		os.Exit(1)
	}
}
