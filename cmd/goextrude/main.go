package main

import "github.com/philipparndt/goextrude/cmd"

func main() {
	cmd.Execute()
}
