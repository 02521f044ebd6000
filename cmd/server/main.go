package main

import "github.com/jarvis-home/eventlog/cmd/server/cmd"

func main() {
	cmd.Execute()
}
