package contact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countLines(vcf, prefix string) int {
	n := 0
	for _, line := range strings.Split(vcf, "\r\n") {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestEncodeContact_OneOfEachField(t *testing.T) {
	in := Info{Name: "Jane Doe", Email: "jane@x.com", Phone: "555-1234"}
	b, err := EncodeContact(in)
	require.NoError(t, err)

	vcf := string(b)
	assert.True(t, strings.HasPrefix(vcf, "BEGIN:VCARD\r\nVERSION:3.0\r\n"))
	assert.Equal(t, 1, countLines(vcf, "FN:"))
	assert.Equal(t, 1, countLines(vcf, "EMAIL:"))
	assert.Equal(t, 1, countLines(vcf, "TEL:"))
	assert.Equal(t, 0, countLines(vcf, "URL:"))

	out, err := DecodeContact(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeContact_PassesMalformedInputThrough(t *testing.T) {
	in := Info{Name: "???", Email: "not an email", Phone: "call me maybe"}
	b, err := EncodeContact(in)
	require.NoError(t, err)

	out, err := DecodeContact(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeContact_URLOptional(t *testing.T) {
	in := Info{Name: "Jane Doe", Email: "jane@x.com", Phone: "555-1234", URL: "https://x.com"}
	b, err := EncodeContact(in)
	require.NoError(t, err)
	assert.Equal(t, 1, countLines(string(b), "URL:"))

	out, err := DecodeContact(b)
	require.NoError(t, err)
	assert.Equal(t, "https://x.com", out.URL)
}

func TestEncodeContact_Deterministic(t *testing.T) {
	in := Info{Name: "Jane Doe", Email: "jane@x.com", Phone: "555-1234", URL: "https://x.com"}
	first, err := EncodeContact(in)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := EncodeContact(in)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Jane Doe":      "jane-doe",
		"  Smith, Pat ": "smith-pat",
		"Zoë Ådams":     "zoe-adams",
		"José  Núñez":   "jose-nunez",
		"!!!":           "card",
		"":              "card",
		"Ana 2":         "ana-2",
	}
	for in, want := range tests {
		assert.Equal(t, want, Info{Name: in}.Slug(), in)
	}
}

func TestLoadContactsCSV(t *testing.T) {
	p := filepath.Join(t.TempDir(), "contacts.csv")
	body := "Name,Email,Phone,URL,Notes\n" +
		"Jane Doe,jane@x.com,555-1234,,vip\n" +
		",nobody@x.com,1,,\n" +
		"John Roe, john@x.com ,555-9876,https://roe.dev\n"
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	got, err := LoadContactsCSV(p)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Info{Name: "Jane Doe", Email: "jane@x.com", Phone: "555-1234"}, got[0])
	assert.Equal(t, Info{Name: "John Roe", Email: "john@x.com", Phone: "555-9876", URL: "https://roe.dev"}, got[1])
}

func TestReadContactsCSV_Errors(t *testing.T) {
	_, err := ReadContactsCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadContactsCSV(strings.NewReader("email,phone\na@b.c,1\n"))
	assert.Error(t, err)

	_, err = LoadContactsCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
