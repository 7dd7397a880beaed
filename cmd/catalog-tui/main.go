package main

import (
	"context"
	"fmt"
	"os"

	"github.com/handiism/album-catalog/internal/app"
)

func main() {
	ctx := context.Background()

	a, err := app.New(ctx, app.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = a.Browse(ctx)
	_ = a.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
