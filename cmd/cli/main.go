package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/celestiaorg/jobtracker/cmd/cli/commands"
)

func main() {
	// Pick up JOBTRACKER_SERVER_ADDRESS from a local .env file, if any
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
