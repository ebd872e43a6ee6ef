//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"os"

	"dendrite/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if _, err := buildSim(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "dla-view: built without GUI support; rebuild with: go build -tags ebiten ./cmd/dla-view")
	os.Exit(2)
}
