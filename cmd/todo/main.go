package main

import (
	"os"

	"github.com/todo-cli/todo/internal/cli"
)

func main() {
	code := cli.Run(os.Args[1:])
	os.Exit(code)
}
