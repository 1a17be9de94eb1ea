package main

import "github.com/saeidalz13/battleship-board/internal/cli"

func main() {
	cli.Execute()
}
