package main

import (
	"os"

	"shiftrota/cmd"
	"shiftrota/internal/util"
)

func main() {
	if err := cmd.Execute(); err != nil {
		util.Fail("%v", err)
		util.Sync()
		os.Exit(1)
	}
}
