package main

import "github.com/gaurav-prasanna/descpipe/cmd"

func main() {
	cmd.Execute()
}
