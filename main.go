package main

import "github.com/CodeContextHQ/ccc/cmd"

func main() {
	cmd.Execute()
}
