package main

import "storyseq/cmd/storyseq/cmd"

func main() {
	cmd.Execute()
}
