package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validMD5    = "d229da563da18fe5d58cd95a6467d584"
	validSHA1   = "b314c7ebb7d599944981908b7f3ed33a30e78f3a"
	validSHA256 = "1eb85fc97224598dad1852b5d6483bbcf0aa8608790dcc657a5a2a761ae9c8c6"
)

func TestBareCandidate(t *testing.T) {
	t.Parallel()

	c, err := bareCandidate("  " + strings.ToUpper(validSHA1) + "\n")
	require.NoError(t, err)
	assert.Equal(t, algSHA1, c.alg)
	assert.Equal(t, validSHA1, c.hexHash)
	assert.Empty(t, c.filename)
}

func TestBareCandidateRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := bareCandidate("not a hash")
	assert.Error(t, err)

	// One hex char short of an MD5.
	_, err = bareCandidate(validMD5[:31])
	assert.ErrorIs(t, err, errUnknownHashLen)
}

func TestParseListingLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		line     string
		wantAlg  algorithm
		wantName string
	}{
		{"gnu", validSHA256 + "  myfile.iso", algSHA256, "myfile.iso"},
		{"gnu_binary", validSHA256 + " *myfile.iso", algSHA256, "myfile.iso"},
		{"gnu_md5", validMD5 + "  archive.tar.gz", algMD5, "archive.tar.gz"},
		{"bsd", "SHA256 (myfile.iso) = " + validSHA256, algSHA256, "myfile.iso"},
		{"leading_tag", "sha256: " + validSHA256 + " myfile.iso", algSHA256, "myfile.iso"},
		{"hash_only", validSHA1, algSHA1, ""},
		{"padded", "   " + validSHA1 + "  a.bin   ", algSHA1, "a.bin"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, ok := parseListingLine(tc.line)
			require.True(t, ok, "line %q", tc.line)
			assert.Equal(t, tc.wantAlg, c.alg)
			assert.Equal(t, tc.wantName, c.filename)
		})
	}
}

func TestParseListingLineSkipsNoise(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		"",
		"   ",
		"# checksums below",
		"no hex here at all",
		"zzzz  myfile.iso",
		validMD5[:31] + "  short.iso",
	} {
		_, ok := parseListingLine(line)
		assert.False(t, ok, "line %q", line)
	}
}

func TestParseListingLineLowercasesHex(t *testing.T) {
	t.Parallel()

	c, ok := parseListingLine(strings.ToUpper(validSHA256) + "  myfile.iso")
	require.True(t, ok)
	assert.Equal(t, validSHA256, c.hexHash)
}

func TestCandidatesFromTextBareHash(t *testing.T) {
	t.Parallel()

	cands, bare, err := candidatesFromText("\n " + validMD5 + " \n")
	require.NoError(t, err)
	assert.True(t, bare)
	require.Len(t, cands, 1)
	assert.Equal(t, algMD5, cands[0].alg)
	assert.Empty(t, cands[0].filename)
}

func TestCandidatesFromTextListing(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"# SHASUMS",
		validSHA256 + "  first.iso",
		"",
		"this line is noise and is skipped",
		validSHA1 + " *second.bin",
	}, "\n")

	cands, bare, err := candidatesFromText(text)
	require.NoError(t, err)
	assert.False(t, bare)
	require.Len(t, cands, 2)
	assert.Equal(t, "first.iso", cands[0].filename)
	assert.Equal(t, "second.bin", cands[1].filename)
	assert.Equal(t, algSHA256, cands[0].alg)
	assert.Equal(t, algSHA1, cands[1].alg)
}

func TestCandidatesFromTextNoHash(t *testing.T) {
	t.Parallel()

	_, _, err := candidatesFromText("nothing here\nat all\n")
	assert.ErrorIs(t, err, errNoHashFound)
}

func TestSelectCandidatePrefersFilenameMatch(t *testing.T) {
	t.Parallel()

	cands := []candidate{
		{alg: algSHA256, hexHash: validSHA256, filename: "other.iso"},
		{alg: algSHA256, hexHash: strings.Repeat("0", 64), filename: "myfile.iso"},
	}
	sel, err := selectCandidate(cands, "myfile.iso")
	require.NoError(t, err)
	assert.Equal(t, "myfile.iso", sel.filename)
}

func TestSelectCandidateSoleFallback(t *testing.T) {
	t.Parallel()

	cands := []candidate{{alg: algSHA256, hexHash: validSHA256, filename: "other.iso"}}
	sel, err := selectCandidate(cands, "myfile.iso")
	require.NoError(t, err)
	assert.Equal(t, "other.iso", sel.filename)
}

func TestSelectCandidateAmbiguous(t *testing.T) {
	t.Parallel()

	cands := []candidate{
		{alg: algSHA256, hexHash: validSHA256, filename: "a.iso"},
		{alg: algSHA256, hexHash: strings.Repeat("0", 64), filename: "b.iso"},
	}
	_, err := selectCandidate(cands, "myfile.iso")
	assert.ErrorIs(t, err, errAmbiguousHash)

	// Unnamable input can never disambiguate multiple candidates.
	_, err = selectCandidate(cands, "")
	assert.ErrorIs(t, err, errAmbiguousHash)
}

func TestResolveExpectedNoMethod(t *testing.T) {
	t.Parallel()

	res, err := resolveExpected(&options{input: "whatever"}, "whatever")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestResolveExpectedFromArgument(t *testing.T) {
	t.Parallel()

	res, err := resolveExpected(&options{hashArg: validSHA1}, "f.bin")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, sourceArgument, res.source.kind)
	assert.Equal(t, algSHA1, res.candidate.alg)
}

func TestResolveExpectedFromRawFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "check.txt", []byte(validSHA256+"\n"))

	res, err := resolveExpected(&options{checkPath: path}, "f.bin")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, sourceRawFile, res.source.kind)
	assert.Equal(t, validSHA256, res.candidate.hexHash)
}

func TestResolveExpectedFromListingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	listing := validSHA256 + "  f.bin\n" + validSHA1 + "  g.bin\n"
	path := writeFile(t, dir, "SHA256SUMS", []byte(listing))

	res, err := resolveExpected(&options{checkPath: path}, "f.bin")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, sourceListingFile, res.source.kind)
	assert.Equal(t, "f.bin", res.candidate.filename)
	assert.Equal(t, algSHA256, res.candidate.alg)
}

func TestResolveExpectedMissingFile(t *testing.T) {
	t.Parallel()

	_, err := resolveExpected(&options{checkPath: "/does/not/exist"}, "f.bin")
	assert.Error(t, err)
}
