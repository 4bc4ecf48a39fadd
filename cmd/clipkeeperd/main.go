package main

import "github.com/clipkeeper/clipkeeperd/internal/cli"

func main() {
	cli.Execute()
}
