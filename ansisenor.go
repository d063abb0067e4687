/*
Package ansisenor runs a command with color output forced on, tees the
command's output to the terminal and into a capture buffer, and renders the
sealed capture as a standalone HTML page.

You can call this library from the command line with ansi-senor:
go install github.com/ansi-senor/ansi-senor/cmd/ansi-senor
*/
package ansisenor

// Version returns the tool and library version.
func Version() string {
	return "1.2.0"
}
