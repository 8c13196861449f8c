package main

import "github.com/jsphweid/movements/cmd"

func main() {
	cmd.Execute()
}
