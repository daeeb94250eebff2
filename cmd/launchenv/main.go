package main

import "github.com/aalvaropc/launchenv/internal/cli"

func main() {
	cli.Execute()
}
