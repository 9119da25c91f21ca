package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Output is where messages are written. Colours are only emitted when it is
// a terminal.
var Output io.Writer = os.Stdout

func paint(colour, message string) string {
	if f, ok := Output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return colour + message + Reset
	}

	return message
}

func Errorln(message string) {
	fmt.Fprintln(Output, paint(RedColour, message))
}

func Successln(message string) {
	fmt.Fprintln(Output, paint(GreenColour, message))
}

func Warningln(message string) {
	fmt.Fprintln(Output, paint(YellowColour, message))
}

func Blueln(message string) {
	fmt.Fprintln(Output, paint(BlueColour, message))
}

func Cyanln(message string) {
	fmt.Fprintln(Output, paint(CyanColour, message))
}

func Grayln(message string) {
	fmt.Fprintln(Output, paint(GrayColour, message))
}
