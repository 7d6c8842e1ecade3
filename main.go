package main

import "github.com/iksnae/sse-session/cmd"

func main() {
	cmd.Execute()
}
