package main

import (
	"fmt"
	"os"

	"github.com/cmlabs-hris/employee-manager-go/cmd/staffctl/command"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/message"
)

func main() {
	if err := command.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, message.FromError(err))
		os.Exit(1)
	}
}
