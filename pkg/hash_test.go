package inventorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHashAlgorithm(t *testing.T) {
	testCases := []struct {
		name  string
		want  HashAlgorithm
		size  int
		valid bool
	}{
		{"md5", MD5, HashSizeMD5, true},
		{"sha1", SHA1, HashSizeSHA1, true},
		{"SHA1", 0, 0, false},
		{"Md5", 0, 0, false},
		{" sha1 ", 0, 0, false},
		{"sha256", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tc := range testCases {
		alg, err := ParseHashAlgorithm(tc.name)
		if !tc.valid {
			var parseErr *ParseHashAlgorithmError
			assert.ErrorAs(t, err, &parseErr, "name %q", tc.name)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, alg)
		assert.Equal(t, tc.size, alg.Size())
	}
}

func TestParseHashAlgorithmsSortsAndDeduplicates(t *testing.T) {
	algs, err := ParseHashAlgorithms([]string{"sha1", "md5", "sha1"})
	require.NoError(t, err)
	assert.Equal(t, []HashAlgorithm{MD5, SHA1}, algs)

	_, err = ParseHashAlgorithms([]string{"md5", "crc32"})
	assert.Error(t, err)
}

func TestHashAlgorithmText(t *testing.T) {
	text, err := SHA1.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "sha1", string(text))

	var alg HashAlgorithm
	require.NoError(t, alg.UnmarshalText([]byte("md5")))
	assert.Equal(t, MD5, alg)
	assert.Error(t, alg.UnmarshalText([]byte("blake3")))

	_, err = HashAlgorithm(0).MarshalText()
	assert.Error(t, err)
}

func TestParseHashValue(t *testing.T) {
	v, err := ParseHashValue("D41D8CD98F00B204E9800998ECF8427E")
	require.NoError(t, err)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", v.String())
	assert.Equal(t, HashSizeMD5, v.Len())

	var valueErr *ParseHashValueError
	_, err = ParseHashValue("abc")
	assert.ErrorAs(t, err, &valueErr)
	_, err = ParseHashValue("zz")
	assert.ErrorAs(t, err, &valueErr)
}

func TestHashValueIsImmutable(t *testing.T) {
	src := []byte{1, 2, 3}
	v := NewHashValue(src)
	src[0] = 9

	out := v.Bytes()
	out[1] = 9
	assert.Equal(t, []byte{1, 2, 3}, v.Bytes())
}

func TestHashesEqual(t *testing.T) {
	a := Hashes{MD5: NewHashValue([]byte{1}), SHA1: NewHashValue([]byte{2})}
	b := Hashes{MD5: NewHashValue([]byte{1}), SHA1: NewHashValue([]byte{2})}
	assert.True(t, a.Equal(b))

	b[SHA1] = NewHashValue([]byte{3})
	assert.False(t, a.Equal(b))

	delete(b, SHA1)
	assert.False(t, a.Equal(b))
	assert.Equal(t, []HashAlgorithm{MD5, SHA1}, a.Algorithms())
}
