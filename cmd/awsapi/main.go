package main

import (
	"os"

	"github.com/mevansam/awsapi/cmd/awsapi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
