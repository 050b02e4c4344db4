package query_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreame-maker/kat/query"
)

func TestSetAddRendersQueryString(t *testing.T) {
	q := query.New()
	q.Set("k").Add("a b").Set("n").Add("5")
	assert.Equal(t, "?k=a+b&n=5", q.ToURL())
}

func TestToMapDecodesBackToOriginal(t *testing.T) {
	q := query.New()
	q.Set("a").Add("1").Set("b").Add("c d")
	got := q.ToMap()
	assert.Equal(t, map[string]string{"a": "1", "b": "c d"}, got)
}

func TestPercentEncodesReservedBytes(t *testing.T) {
	q := query.New()
	q.Set("key").Add("a&b=c")
	assert.Equal(t, "?key=a%26b%3Dc", q.ToURL())
}

func TestRoundTripArbitraryUTF8(t *testing.T) {
	q := query.New()
	q.Set("name").Add("日本語")
	m := q.ToMap()
	assert.Equal(t, "日本語", m["name"])
}

func TestAddRangeEncodesSubstring(t *testing.T) {
	q := query.New()
	q.Set("k").AddRange("xxa bxx", 2, 3)
	assert.Equal(t, "?k=a+b", q.ToURL())
}

func TestClientStreamsRenderedBuffer(t *testing.T) {
	q := query.New()
	q.Set("k").Add("v")
	b, err := io.ReadAll(q.Client())
	require.NoError(t, err)
	assert.Equal(t, "?k=v", string(b))
}
