package main

import "github.com/chriserin/ftsnip/cmd"

func main() {
	cmd.Execute()
}
