package main

import "github.com/nuggetscustoms/site/internal/cli"

func main() {
	cli.Execute()
}
