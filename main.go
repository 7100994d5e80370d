package main

import "gess/cmd"

func main() {
	cmd.Execute()
}
