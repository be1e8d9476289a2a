package main

import (
	"os"

	"newsdesk-service/internal/cli"
)

// @title Newsdesk API
// @version 1.0
// @description Topic performance reports over broadcast segments and channel audience.
// @BasePath /news/api
func main() {
	if err := cli.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
