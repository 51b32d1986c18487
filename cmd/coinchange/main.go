// Command coinchange makes change with the fewest coins.
//
//	coinchange make 63 --currency us21
//	coinchange table 100 --coins 1,3,4 --plot
//	coinchange compare 63 --currency us21
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/coinchange/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
