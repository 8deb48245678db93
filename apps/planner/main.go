package main

import (
	"fmt"
	"os"
)

func main() {
	cli := &commandLine{out: os.Stdout}
	if err := cli.run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
