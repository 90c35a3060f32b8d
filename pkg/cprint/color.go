package cprint

import (
	"io"
	"sync"

	"github.com/fatih/color"
)

var (
	// mu is used to synchronize writes from multiple goroutines.
	mu sync.Mutex
	// DisableOutput disables all output.
	DisableOutput bool
)

func conditionalPrintf(fn func(string, ...interface{}), format string, a ...interface{}) {
	if DisableOutput {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fn(format, a...)
}

func conditionalPrintln(fn func(...interface{}), a ...interface{}) {
	if DisableOutput {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fn(a...)
}

func conditionalFprintln(fn func(io.Writer, ...interface{}), w io.Writer, a ...interface{}) {
	if DisableOutput {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fn(w, a...)
}

var (
	successPrintf = color.New(color.FgGreen).PrintfFunc()
	errorPrintf   = color.New(color.FgRed).PrintfFunc()
	warnPrintf    = color.New(color.FgYellow).PrintfFunc()

	// SuccessPrintf is fmt.Printf with green as foreground color.
	SuccessPrintf = func(format string, a ...interface{}) {
		conditionalPrintf(successPrintf, format, a...)
	}

	// ErrorPrintf is fmt.Printf with red as foreground color.
	ErrorPrintf = func(format string, a ...interface{}) {
		conditionalPrintf(errorPrintf, format, a...)
	}

	// WarnPrintf is fmt.Printf with yellow as foreground color.
	WarnPrintf = func(format string, a ...interface{}) {
		conditionalPrintf(warnPrintf, format, a...)
	}

	successPrintln  = color.New(color.FgGreen).PrintlnFunc()
	errorPrintln    = color.New(color.FgRed).PrintlnFunc()
	warnPrintln     = color.New(color.FgYellow).PrintlnFunc()
	successFprintln = color.New(color.FgGreen).FprintlnFunc()
	errorFprintln   = color.New(color.FgRed).FprintlnFunc()
	warnFprintln    = color.New(color.FgYellow).FprintlnFunc()

	// SuccessPrintln is fmt.Println with green as foreground color.
	SuccessPrintln = func(a ...interface{}) {
		conditionalPrintln(successPrintln, a...)
	}

	// ErrorPrintln is fmt.Println with red as foreground color.
	ErrorPrintln = func(a ...interface{}) {
		conditionalPrintln(errorPrintln, a...)
	}

	// WarnPrintln is fmt.Println with yellow as foreground color.
	WarnPrintln = func(a ...interface{}) {
		conditionalPrintln(warnPrintln, a...)
	}

	// SuccessFprintln is fmt.Fprintln with green as foreground color.
	SuccessFprintln = func(w io.Writer, a ...interface{}) {
		conditionalFprintln(successFprintln, w, a...)
	}

	// ErrorFprintln is fmt.Fprintln with red as foreground color.
	ErrorFprintln = func(w io.Writer, a ...interface{}) {
		conditionalFprintln(errorFprintln, w, a...)
	}

	// WarnFprintln is fmt.Fprintln with yellow as foreground color.
	WarnFprintln = func(w io.Writer, a ...interface{}) {
		conditionalFprintln(warnFprintln, w, a...)
	}
)
