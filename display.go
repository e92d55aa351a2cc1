package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	nameColor  = color.New(color.FgYellow)
	okColor    = color.New(color.FgGreen)
	maybeColor = color.New(color.FgYellow)
	failColor  = color.New(color.FgRed)
	noteColor  = color.New(color.FgCyan)
)

func algColor(a algorithm) *color.Color {
	switch a {
	case algMD5:
		return color.New(color.FgMagenta)
	case algSHA1:
		return color.New(color.FgCyan)
	case algSHA256:
		return color.New(color.FgGreen)
	case algSHA512:
		return color.New(color.FgBlue)
	}
	return color.New(color.Reset)
}

func displayName(inputName string) string {
	if inputName == "" {
		return "standard input"
	}
	return inputName
}

func writeHeader(w io.Writer, inputName string, alg algorithm) {
	_, _ = nameColor.Fprint(w, displayName(inputName))
	fmt.Fprint(w, " / ")
	_, _ = algColor(alg).Fprint(w, alg.String())
	fmt.Fprintln(w)
}

// writeHexCompare prints s one character at a time, coloring each by
// whether it agrees with the same position in other.
func writeHexCompare(w io.Writer, s, other string) {
	for i := 0; i < len(s); i++ {
		c := s[i : i+1]
		if i < len(other) && other[i] == s[i] {
			_, _ = okColor.Fprint(w, c)
		} else {
			_, _ = failColor.Fprint(w, c)
		}
	}
	fmt.Fprintln(w)
}

func writeSource(w io.Writer, src hashSource, claimed string) {
	switch src.kind {
	case sourceArgument:
		_, _ = nameColor.Fprintln(w, "command line argument")
	case sourceClipboard:
		_, _ = nameColor.Fprintln(w, "pasted from clipboard")
	case sourceRawFile:
		if src.path == "-" {
			_, _ = nameColor.Fprintln(w, "from standard input")
		} else {
			_, _ = nameColor.Fprintf(w, "from file '%s' containing raw hash\n", src.path)
		}
	case sourceListingFile:
		if src.path == "-" {
			_, _ = nameColor.Fprintf(w, "'%s' from digests on standard input\n", claimed)
		} else {
			_, _ = nameColor.Fprintf(w, "'%s' in digests file '%s'\n", claimed, src.path)
		}
	}
}

func writeMessages(w io.Writer, messages []message) {
	for _, m := range messages {
		switch m.level {
		case msgWarning:
			_, _ = maybeColor.Fprint(w, "(warning) ")
		case msgNote:
			_, _ = noteColor.Fprint(w, "(note) ")
		}
		fmt.Fprintln(w, m.text)
	}
	if len(messages) > 0 {
		fmt.Fprintln(w)
	}
}

// writeResult renders the final status line. Without color the verdict is
// carried by bracketed ASCII markers instead.
func writeResult(w io.Writer, level matchLevel) {
	fmt.Fprint(w, "Result: ")
	if color.NoColor {
		switch level {
		case matchOK:
			fmt.Fprintln(w, "[ OK ]")
		case matchMaybe:
			fmt.Fprintln(w, "[MAYBE]")
		case matchFail:
			fmt.Fprintln(w, "[FAIL]")
		}
		return
	}
	switch level {
	case matchOK:
		_, _ = okColor.Fprintln(w, "OK")
	case matchMaybe:
		_, _ = maybeColor.Fprintln(w, "MAYBE")
	case matchFail:
		_, _ = failColor.Fprintln(w, "FAIL")
	}
}

// printOutcome renders a verdict or a multi-algorithm report.
func printOutcome(w io.Writer, o *outcome) {
	if o.verdict == nil {
		for _, e := range o.report {
			writeHeader(w, o.inputName, e.alg)
			fmt.Fprintf(w, "%s\n\n", e.hexHash)
		}
		return
	}

	v := o.verdict
	writeHeader(w, o.inputName, v.expected.alg)
	writeHexCompare(w, v.computed, v.expected.hexHash)
	writeHexCompare(w, v.expected.hexHash, v.computed)
	writeSource(w, o.source, v.expected.filename)
	fmt.Fprintln(w)
	writeMessages(w, v.messages)
	writeResult(w, v.level)
}
