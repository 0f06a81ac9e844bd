package main

import "github.com/mfreitas/flashdeck/internal/cli"

func main() {
	cli.Execute()
}
