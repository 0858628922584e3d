package main

import "github.com/alexiusacademia/strainlife/cmd"

func main() {
	cmd.Execute()
}
