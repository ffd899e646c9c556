package main

import (
	"os"
	_ "time/tzdata"

	"github.com/yuzawa-san/wawona/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
