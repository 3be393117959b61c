package main

import (
	"context"

	"congressgov/cmd/congress-cli/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
