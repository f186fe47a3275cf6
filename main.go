package main

import "github.com/niramoy/niramoy_backend/cmd"

func main() {
	cmd.Execute()
}
