package main

import (
	"github.com/foomo/storesweep/cmd"
)

func main() {
	cmd.Execute()
}
