package main

import "github.com/mkarlsen/kindctl/cmd"

func main() {
	cmd.Execute()
}
