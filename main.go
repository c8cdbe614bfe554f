package main

import "codescope/src/handler/cli"

func main() {
	cli.Run()
}
