package main

import "github.com/mouse-blink/prefix-by-date/cmd"

func main() {
	cmd.Execute()
}
