package main

import (
	"fmt"
	"os"

	"gsd/a2z-flashing/cmd/check"
	"gsd/a2z-flashing/cmd/process"
	"gsd/a2z-flashing/cmd/root"
	"gsd/a2z-flashing/cmd/serve"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(process.Cmd)
	root.Cmd.AddCommand(check.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
