package main

import "screenwave/cmd"

func main() {
	cmd.Execute()
}
