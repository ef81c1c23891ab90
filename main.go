package main

import "github.com/jsphweid/abcsmith/cmd"

func main() {
	cmd.Execute()
}
