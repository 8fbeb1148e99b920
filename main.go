package main

import "github.com/brogergvhs/mangaread/cmd"

func main() {
	cmd.Execute()
}
