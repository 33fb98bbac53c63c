package main

import "level-list/cmd"

func main() {
	cmd.Execute()
}
