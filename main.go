package main

import (
	"github.com/nanoporegenomics/wambam/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
