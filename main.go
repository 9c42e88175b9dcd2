package main

import (
	"github.com/hepstats/poissoncover/cmd"
)

func main() {
	cmd.Execute()
}
