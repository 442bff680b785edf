package main

import "pantry-pal/cmd"

func main() {
	cmd.Execute()
}
