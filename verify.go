package main

import (
	"fmt"
	"path/filepath"
	"strings"
)

// matchLevel is the outcome of comparing the computed digest with the
// selected candidate.
type matchLevel int

const (
	matchOK matchLevel = iota
	matchMaybe
	matchFail
)

type messageLevel int

const (
	msgWarning messageLevel = iota
	msgNote
)

type message struct {
	level messageLevel
	text  string
}

// verification is the structured verdict for a single-hash run.
type verification struct {
	level    matchLevel
	expected candidate
	computed string // lowercase hex digest of the input
	messages []message
}

type reportEntry struct {
	alg     algorithm
	hexHash string
}

// outcome is either a verdict (an expected hash was supplied) or a
// report of every digest (none was).
type outcome struct {
	inputName string // basename of the input, "" for standard input
	verdict   *verification
	source    hashSource // meaningful only with a verdict
	report    []reportEntry
}

// judge compares the computed digest against the selected candidate and
// applies the filename-correlation policy.
//
// OK: digests agree and the claimed filename, if any, is confirmed.
// Maybe: digests agree but the claimed filename is wrong or cannot be
// checked because the input came from standard input.
// Fail: digests disagree, whatever the filenames say.
func judge(computed string, sel candidate, inputName string) verification {
	v := verification{expected: sel, computed: strings.ToLower(computed)}

	switch {
	case !strings.EqualFold(computed, sel.hexHash):
		v.level = matchFail

	case sel.filename == "":
		v.level = matchOK

	case inputName == "":
		v.level = matchMaybe
		v.messages = append(v.messages, message{
			level: msgWarning,
			text: fmt.Sprintf("The matched hash has filename '%s', which cannot be checked against standard input.",
				sel.filename),
		})

	case sel.filename == inputName:
		v.level = matchOK

	default:
		v.level = matchMaybe
		v.messages = append(v.messages, message{
			level: msgWarning,
			text: fmt.Sprintf("The matched hash has filename '%s', which does not match the input.",
				sel.filename),
		})
	}

	if sel.alg == algMD5 && v.level != matchFail {
		v.messages = append(v.messages, message{
			level: msgNote,
			text:  "MD5 can easily be forged. Use a stronger algorithm if possible.",
		})
	}
	return v
}

// inputBasename is the name used for filename correlation and display.
func inputBasename(path string) string {
	if path == "-" {
		return ""
	}
	return filepath.Base(path)
}

// runVerification is the engine's single public operation: resolve the
// expected hash (if any), stream the input once, and produce either a
// verdict or a multi-algorithm report. Every error is terminal.
func runVerification(opt *options) (*outcome, error) {
	if opt.input == "-" && opt.checkPath == "-" {
		return nil, errDualStdin
	}

	res, err := resolveExpected(opt, inputBasename(opt.input))
	if err != nil {
		return nil, err
	}

	in, inputName, err := openInput(opt.input)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	if res == nil {
		zlog.Debugw("no expected hash, reporting all digests", "input", opt.input)
		sums, err := digestAll(in, allAlgorithms)
		if err != nil {
			return nil, err
		}
		o := &outcome{inputName: inputName}
		for _, a := range allAlgorithms {
			o.report = append(o.report, reportEntry{alg: a, hexHash: sums[a]})
		}
		return o, nil
	}

	sums, err := digestAll(in, []algorithm{res.candidate.alg})
	if err != nil {
		return nil, err
	}
	v := judge(sums[res.candidate.alg], res.candidate, inputName)
	return &outcome{inputName: inputName, verdict: &v, source: res.source}, nil
}
