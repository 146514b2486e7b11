// Package main provides the addext CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("addext %s\n", version)
		return
	}

	fmt.Println("addext - custom element-wise add extension op")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/basic for a runnable forward/backward walkthrough.")
}
