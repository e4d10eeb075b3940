package main

import (
	"fmt"
	"os"

	"dispensa/internal/ipc"
)

func main() {
	cmd := ipc.CmdTrigger
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	if err := ipc.SendCommand(cmd); err != nil {
		fmt.Println("dispensa-daemon not running:", err)
		os.Exit(1)
	}
}
