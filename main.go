package main

import "sirivaram/sirictl/cmd"

func main() {
	cmd.Execute()
}
