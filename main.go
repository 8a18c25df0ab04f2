package main

import "github.com/notargets/gophp/cmd"

func main() {
	cmd.Execute()
}
