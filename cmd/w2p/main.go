package main

import "github.com/rcweston90/Weight2Plate/internal/cli"

func main() {
	cli.Execute()
}
