package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// sourceKind records how the expected hash reached us. It decides how the
// verdict is described and whether filename correlation can ever apply.
type sourceKind int

const (
	sourceArgument sourceKind = iota
	sourceClipboard
	sourceRawFile
	sourceListingFile
)

type hashSource struct {
	kind sourceKind
	path string // backing file for sourceRawFile/sourceListingFile, "-" for stdin
}

// candidate is one expected-hash record: a digest (canonical lowercase
// hex) and, for listing lines, the filename the digest claims to belong
// to. Bare hashes claim no filename.
type candidate struct {
	alg      algorithm
	hexHash  string
	filename string
}

// resolution is the single candidate chosen for this run.
type resolution struct {
	candidate candidate
	source    hashSource
}

var (
	errNoHashFound   = errors.New("no valid hash found in checksum source")
	errAmbiguousHash = errors.New("multiple candidate hashes and none matches the input filename")
)

// bareCandidate interprets trimmed text as a digest on its own.
func bareCandidate(s string) (candidate, error) {
	s = strings.TrimSpace(s)
	alg, err := classifyHex(s)
	if err != nil {
		return candidate{}, err
	}
	return candidate{alg: alg, hexHash: strings.ToLower(s)}, nil
}

// parseListingLine extracts a candidate from one line of a SHASUMS-style
// listing. The hex token is located first and whatever remains is treated
// as the claimed filename. Lines with no valid-length hex token are not
// an error, they are simply not candidates.
func parseListingLine(line string) (candidate, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return candidate{}, false
	}

	/* BSD style: ALGO (filename) = digest */
	if i := strings.Index(line, " ("); i >= 0 {
		if j := strings.Index(line, ") = "); j > i {
			name := line[i+2 : j]
			dh := strings.TrimSpace(line[j+4:])
			if alg, err := classifyHex(dh); err == nil && name != "" {
				return candidate{alg: alg, hexHash: strings.ToLower(dh), filename: name}, true
			}
		}
	}

	/* GNU style and loose variants: locate the hex token, then treat the
	   rest of the line as the claimed filename once format noise such as
	   algorithm tags, binary-mode asterisks and stray brackets is gone. */
	fields := strings.Fields(line)
	for i, f := range fields {
		alg, err := classifyHex(f)
		if err != nil {
			continue
		}
		rest := make([]string, 0, len(fields)-1)
		rest = append(rest, fields[:i]...)
		rest = append(rest, fields[i+1:]...)
		if len(rest) > 0 && isAlgorithmTag(rest[0]) {
			rest = rest[1:]
		}
		parts := rest[:0]
		for _, tok := range rest {
			tok = strings.Trim(tok, "*()=")
			if tok != "" {
				parts = append(parts, tok)
			}
		}
		name := strings.Join(parts, " ")
		return candidate{alg: alg, hexHash: strings.ToLower(f), filename: name}, true
	}
	return candidate{}, false
}

// isAlgorithmTag reports whether a token before the hex digest looks like
// an algorithm label such as "SHA256:" or "sha-256".
func isAlgorithmTag(tok string) bool {
	tag := strings.ToLower(tok)
	tag = strings.TrimSuffix(tag, ":")
	tag = strings.ReplaceAll(tag, "-", "")
	switch tag {
	case "md5", "sha1", "sha256", "sha512":
		return true
	}
	return false
}

// candidatesFromText turns the raw text of a checksum source into records.
// The whole trimmed text is tried as a bare hash first; otherwise every
// line is parsed tolerantly, keeping source order.
func candidatesFromText(text string) (cands []candidate, bare bool, err error) {
	trimmed := strings.TrimSpace(text)
	if c, berr := bareCandidate(trimmed); berr == nil {
		return []candidate{c}, true, nil
	}
	for _, line := range strings.Split(text, "\n") {
		if c, ok := parseListingLine(line); ok {
			cands = append(cands, c)
		}
	}
	if len(cands) == 0 {
		return nil, false, errNoHashFound
	}
	return cands, false, nil
}

// selectCandidate applies the filename-preference policy: an exact match
// on the input's basename wins, a sole candidate is acceptable without
// one, and anything else is ambiguous rather than guessed.
func selectCandidate(cands []candidate, inputName string) (candidate, error) {
	if inputName != "" {
		for _, c := range cands {
			if c.filename == inputName {
				return c, nil
			}
		}
	}
	if len(cands) == 1 {
		return cands[0], nil
	}
	return candidate{}, errors.Wrapf(errAmbiguousHash, "%d candidates", len(cands))
}

// readSourceText slurps the checksum source. Sources are small listing
// files, never the data being verified.
func readSourceText(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading checksum source from stdin")
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading checksum source %q", path)
	}
	return string(b), nil
}

// resolveExpected works out the expected hash for this run from whichever
// method the user chose, or returns nil when no hash was supplied and all
// algorithms should be reported instead. inputName is the input file's
// basename, empty for standard input.
func resolveExpected(opt *options, inputName string) (*resolution, error) {
	switch {
	case opt.hashArg != "":
		c, err := bareCandidate(opt.hashArg)
		if err != nil {
			return nil, errors.Wrap(err, "hash argument")
		}
		zlog.Debugw("hash from command line", "algorithm", c.alg.String())
		return &resolution{candidate: c, source: hashSource{kind: sourceArgument}}, nil

	case opt.paste:
		c, err := clipboardCandidate()
		if err != nil {
			return nil, err
		}
		zlog.Debugw("hash from clipboard", "algorithm", c.alg.String())
		return &resolution{candidate: c, source: hashSource{kind: sourceClipboard}}, nil

	case opt.checkPath != "":
		text, err := readSourceText(opt.checkPath)
		if err != nil {
			return nil, err
		}
		cands, bare, err := candidatesFromText(text)
		if err != nil {
			return nil, errors.Wrapf(err, "check source %q", opt.checkPath)
		}
		kind := sourceListingFile
		if bare {
			kind = sourceRawFile
		}
		sel, err := selectCandidate(cands, inputName)
		if err != nil {
			return nil, errors.Wrapf(err, "check source %q", opt.checkPath)
		}
		zlog.Debugw("hash from check source",
			"path", opt.checkPath,
			"candidates", len(cands),
			"algorithm", sel.alg.String(),
			"claimed", sel.filename,
		)
		return &resolution{candidate: sel, source: hashSource{kind: kind, path: opt.checkPath}}, nil
	}
	return nil, nil
}
