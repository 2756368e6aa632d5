package main

import "github.com/BerylCAtieno/network-navigator/internal/cmd"

func main() {
	cmd.Execute()
}
