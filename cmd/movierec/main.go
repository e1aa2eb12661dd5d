package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/movierec-go/internal/infrastructure/cli"
)

func main() {
	opts := cli.Options{Verbose: isVerbose()}

	if err := cli.Execute(context.Background(), opts, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("MOVIEREC_DEBUG"), "1") || strings.EqualFold(os.Getenv("MOVIEREC_DEBUG"), "true")
}
