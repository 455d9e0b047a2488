package main

import "github.com/mouse-blink/linetally/cmd"

func main() {
	cmd.Execute()
}
