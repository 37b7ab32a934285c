package main

import "github.com/nilaykumar/must/cmd"

func main() {
	cmd.Execute()
}
