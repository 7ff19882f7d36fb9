package main

import "mtg-utils/cmd"

func main() {
	cmd.Execute()
}
