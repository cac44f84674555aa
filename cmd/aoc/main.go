// Package main provides the aoc command for solving Advent of Code 2023 puzzles.
package main

import (
	"os"

	"github.com/okkero/Advent-of-Code-2023/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
