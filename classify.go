package main

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/pkg/errors"
)

// algorithm identifies one of the supported digest families. The set is
// closed: each member produces a unique hex digest length, which is what
// makes detection from the digest string alone possible.
type algorithm int

const (
	algMD5 algorithm = iota
	algSHA1
	algSHA256
	algSHA512
)

// allAlgorithms is in report order.
var allAlgorithms = []algorithm{algMD5, algSHA1, algSHA256, algSHA512}

var (
	errInvalidHex     = errors.New("hash is not valid hex")
	errUnknownHashLen = errors.New("hash length matches no supported digest")
)

func (a algorithm) String() string {
	switch a {
	case algMD5:
		return "MD5"
	case algSHA1:
		return "SHA-1"
	case algSHA256:
		return "SHA-256"
	case algSHA512:
		return "SHA-512"
	}
	return "unknown"
}

// hexLen is the length of this algorithm's digest in hex characters.
func (a algorithm) hexLen() int {
	switch a {
	case algMD5:
		return md5.Size * 2
	case algSHA1:
		return sha1.Size * 2
	case algSHA256:
		return sha256.Size * 2
	case algSHA512:
		return sha512.Size * 2
	}
	return 0
}

func (a algorithm) newHash() hash.Hash {
	switch a {
	case algMD5:
		return md5.New()
	case algSHA1:
		return sha1.New()
	case algSHA256:
		return sha256.New()
	case algSHA512:
		return sha512.New()
	}
	return nil
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') ||
			(c >= 'a' && c <= 'f') ||
			(c >= 'A' && c <= 'F') {
			continue
		}
		return false
	}
	return true
}

// classifyHex maps a hex digest string to the algorithm producing digests
// of that length. Case-insensitive; content is validated before length.
func classifyHex(s string) (algorithm, error) {
	if !isHex(s) {
		return 0, errInvalidHex
	}
	for _, a := range allAlgorithms {
		if len(s) == a.hexLen() {
			return a, nil
		}
	}
	return 0, errors.Wrapf(errUnknownHashLen, "%d hex characters", len(s))
}
