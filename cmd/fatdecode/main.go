package main

import (
	"os"

	"github.com/aligator/fatdecode/internal/logger"
)

func main() {
	err := newRootCommand().Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
