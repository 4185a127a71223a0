package main

import "github.com/irenetello/react-doctor/cmd"

func main() {
	cmd.Execute()
}
