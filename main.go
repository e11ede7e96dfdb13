package main

import "finq/cmd"

func main() {
	cmd.Execute()
}
