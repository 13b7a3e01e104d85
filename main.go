package main

import "github.com/curaline/curaline_backend/cmd"

func main() {
	cmd.Execute()
}
