package main

import "github.com/hxlin/tomato-cli/cmd"

func main() {
	cmd.Execute()
}
