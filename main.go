// ABOUTME: Service entry point
// ABOUTME: Delegates startup and shutdown to the bootstrap package
package main

import (
	"context"
	"fmt"
	"os"

	"news-remix/bootstrap"
)

func main() {
	if err := bootstrap.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "news-remix failed to start: %v\n", err)
		os.Exit(1)
	}
}
