package main

import "github.com/datachores/censusprep/cmd"

func main() {
	cmd.Execute()
}
