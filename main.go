package main

import "trailmate/cmd"

func main() {
	cmd.Execute()
}
