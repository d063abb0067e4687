// ansi2html converts ANSI text from stdin (or a file argument) into a
// standalone HTML document on stdout. Useful for re-rendering a capture
// with a different theme without rerunning the command.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	ansisenor "github.com/ansi-senor/ansi-senor"
)

var (
	themeName = flag.String("theme", "dark", "color theme, light or dark")
	title     = flag.String("title", "ansi2html", "document title")
)

func main() {
	flag.Parse()

	theme, err := ansisenor.ParseTheme(*themeName)
	if err != nil {
		log.Fatal(err)
	}

	var input []byte
	if flag.NArg() > 0 && flag.Arg(0) != "-" {
		input, err = os.ReadFile(flag.Arg(0))
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatal(err)
	}

	doc, err := ansisenor.Document(*title, input, theme)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s", doc)
}
