package main

import (
	"wordroom/internal/cli"
)

func main() {
	cli.Execute()
}
