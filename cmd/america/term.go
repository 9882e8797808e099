// Command america — colored terminal output.
//
// The dialect: progress lines open with a green "[+]" tag, errors with a red
// "[!!!]" tag on stderr, and the result section header renders blue.
package main

import (
	"fmt"
	"os"
)

const (
	colorRed   = "\x1b[31m"
	colorGreen = "\x1b[32m"
	colorBlue  = "\x1b[34m"
	colorReset = "\x1b[0m"
)

// info prints one progress line to stdout.
func info(format string, args ...any) {
	fmt.Printf("["+colorGreen+"+"+colorReset+"] "+format+"\n", args...)
}

// fail prints one error line to stderr.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "["+colorRed+"!!!"+colorReset+"] "+format+"\n", args...)
}

// header prints a blue section line to stdout.
func header(format string, args ...any) {
	fmt.Printf(colorBlue+format+colorReset+"\n", args...)
}
