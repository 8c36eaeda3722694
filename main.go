package main

import "github.com/kberry/kcal/cmd"

func main() {
	cmd.Execute()
}
