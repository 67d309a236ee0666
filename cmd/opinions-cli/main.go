package main

import (
	"context"

	"debateservice/cmd/opinions-cli/commands"
	"debateservice/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)
	commands.ExecuteContext(context.Background())
}
