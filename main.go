package main

import "github.com/mecheng-tools/goshaft/cmd"

func main() {
	cmd.Execute()
}
