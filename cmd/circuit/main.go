package main

import "github.com/OpenCircuitLab/OpenCircuitSim/cmd/circuit/cmd"

func main() {
	cmd.Execute()
}
