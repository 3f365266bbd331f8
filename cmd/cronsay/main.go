package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/quailyquaily/cronsay/cmd/cronsay/describecmd"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// describe already printed each failing expression.
		if !errors.Is(err, describecmd.ErrFailed) {
			fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		}
		os.Exit(1)
	}
}
