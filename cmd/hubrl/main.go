package main

import "github.com/hubrl/hubrl/cmd/hubrl/cmd"

func main() {
	cmd.Execute()
}
