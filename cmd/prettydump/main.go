// Command prettydump pretty-prints JSON, YAML and TOML documents.
package main

import (
	"fmt"
	"os"

	"github.com/bjaus/pretty/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "prettydump:", err)
		os.Exit(1)
	}
}
