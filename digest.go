package main

import (
	"encoding/hex"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const bufLen = 1 << 16

// openInput returns a reader over the input bytes plus the name used for
// filename correlation. Standard input has no usable name.
func openInput(path string) (io.ReadCloser, string, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), "", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "opening input %q", path)
	}
	if fi, serr := f.Stat(); serr == nil && fi.IsDir() {
		_ = f.Close()
		return nil, "", errors.Errorf("%s: is a directory", path)
	}
	return f, filepath.Base(path), nil
}

// digestAll consumes r exactly once, updating every requested hash state
// per buffer, and returns lowercase hex digests keyed by algorithm. One
// read of the data suffices no matter how many algorithms are wanted.
// On a read failure the partial state is discarded.
func digestAll(r io.Reader, algs []algorithm) (map[algorithm]string, error) {
	states := make(map[algorithm]hash.Hash, len(algs))
	writers := make([]hash.Hash, 0, len(algs))
	for _, a := range algs {
		h := a.newHash()
		states[a] = h
		writers = append(writers, h)
	}

	buf := make([]byte, bufLen)
	var total int64
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			total += int64(n)
			for _, w := range writers {
				/* hash.Hash writes never fail */
				_, _ = w.Write(buf[:n])
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, errors.Wrap(rerr, "reading input")
		}
	}
	zlog.Debugw("input hashed", "bytes", total, "algorithms", len(algs))

	out := make(map[algorithm]string, len(states))
	for a, h := range states {
		out[a] = hex.EncodeToString(h.Sum(nil))
	}
	return out, nil
}
