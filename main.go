// Package main provides the entry point for the meamap command line.
package main

import (
	"log"

	"meamap/cmd"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cmd.Execute()
}
