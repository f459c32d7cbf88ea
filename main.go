package main

import "github.com/pawpal-dev/pawpal/cmd"

func main() {
	cmd.Execute()
}
