// Package main provides the Born graph library CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Born Graph %s\n", version)
		return
	}

	fmt.Println("Born Graph - Computation-Graph Vertices for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/elementwise for a runnable forward/backward demo.")
}
