package main

import (
	"os"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
