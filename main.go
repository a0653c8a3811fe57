package main

import (
	"github.com/jessequinn/config-compliance-cli/cmd"
)

func main() {
	cmd.Execute()
}
