package main

import "ctgapi/cmd"

func main() {
	cmd.Execute()
}
