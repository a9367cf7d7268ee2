package main

import "github.com/mupshaw/gopond/cmd"

func main() {
	cmd.Execute()
}
