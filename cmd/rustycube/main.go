// Command rustycube simulates a Rubik's cube of configurable edge length
// and searches for equivalent move sequences.
package main

import (
	"github.com/bit-fu/RustyCube/internal/cli"
)

func main() {
	cli.Execute()
}
