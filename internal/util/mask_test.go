package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	cases := map[string]string{
		"john@example.com":     "j…@e….com",
		" Jane@Corp.Example.io": "j…@c….example.io",
		"a@b.c":                "a@b.c",
		"not-an-email":         "n…",
		"@example.com":         "@…",
		"":                     "",
		"Élodie@ex.fr":         "é…@e….fr",
	}
	for in, want := range cases {
		assert.Equal(t, want, MaskEmail(in), in)
	}
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "***", MaskSecret("s3cret"))
}
