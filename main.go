package main

import "github.com/tanq16/getr/cmd"

func main() {
	cmd.Execute()
}
