package main

import "github.com/salomonMuriel/ignacio-bot-sub001/cmd/ignacio/cmd"

func main() {
	cmd.Execute()
}
