package main

import "moodlog/cmd/moodlog-cli/cmd"

func main() {
	cmd.Execute()
}
