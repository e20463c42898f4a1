package main

import "github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/cmd"

func main() {
	cmd.Execute()
}
