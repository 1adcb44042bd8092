package main

import "dario.lol/cdns/cmd"

func main() {
	cmd.Execute()
}
