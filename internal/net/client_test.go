package net

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLocale(t *testing.T) {
	got, err := WithLocale("https://maps.example/preview/place?pb=!1m2&hl=de", "th", "th")
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "th", u.Query().Get("hl"))
	assert.Equal(t, "th", u.Query().Get("gl"))
	assert.Equal(t, "!1m2", u.Query().Get("pb"))

	got, err = WithLocale("https://maps.example/x?hl=ja", "", "")
	require.NoError(t, err)
	assert.Equal(t, "https://maps.example/x?hl=ja", got)

	_, err = WithLocale("://bad", "en", "")
	require.Error(t, err)
}
