package main

import "github.com/slivka2007/golfing-grouper/internal/cli"

func main() {
	cli.Execute()
}
