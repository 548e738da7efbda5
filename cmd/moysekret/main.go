package main

import (
	"os"

	"moysekret/cmd/moysekret/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
