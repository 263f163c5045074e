package main

import "newchrome/newchrome/cmd"

func main() {
	cmd.Execute()
}
