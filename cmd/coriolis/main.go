package main

import "github.com/robsonmobile/coriolis/internal/adapters/cli"

func main() {
	cli.Execute()
}
