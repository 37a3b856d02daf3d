package main

import "github.com/sounder-audio/sounder/internal/cli"

func main() {
	cli.Execute()
}
