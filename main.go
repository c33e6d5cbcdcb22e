/*
Copyright © 2026 Marco Lopes
*/
package main

import "github.com/mlopes/yahtzee/cmd"

func main() {
	cmd.Execute()
}
