// Command packdump encodes and decodes interchange wire values from the
// command line, for debugging a capture or a hand-written test fixture.
package main

import "github.com/nascanti/interchange/cmd/packdump/cmd"

func main() {
	cmd.Execute()
}
