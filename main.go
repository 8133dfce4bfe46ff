package main

import "github.com/jsphweid/midisynth/cmd"

func main() {
	cmd.Execute()
}
