package main

import "github.com/theirongolddev/saveup/cmd"

func main() {
	cmd.Execute()
}
