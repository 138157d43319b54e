package main

import (
	"os"

	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
