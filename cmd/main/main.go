package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cthealljr/todo/pkg/cli"
	"github.com/cthealljr/todo/pkg/db"
)

func main() {
	cmd := cli.NewRootCommand()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps error kinds to process exit codes: storage failures exit
// 2, everything else (bad input, missing items) exits 1.
func exitCode(err error) int {
	var storageErr *db.StorageError
	if errors.As(err, &storageErr) {
		return 2
	}

	return 1
}
