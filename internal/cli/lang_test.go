package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "pt_BR.UTF-8")
	assert.Equal(t, "pt-BR", systemLocale())

	t.Setenv("LC_ALL", "ja_JP.eucJP")
	assert.Equal(t, "ja-JP", systemLocale(), "LC_ALL wins over LANG")

	t.Setenv("LC_ALL", "C")
	t.Setenv("LANG", "C")
	assert.Equal(t, "", systemLocale(), "the C locale expresses no preference")
}
