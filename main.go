package main

import "traysheet/cmd"

func main() {
	cmd.Execute()
}
