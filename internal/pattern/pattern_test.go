package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileLiteral(t *testing.T) {
	t.Run("metacharacters are matched literally", func(t *testing.T) {
		m, err := Compile(Term{Raw: "a.b"})
		require.NoError(t, err)

		assert.True(t, m.Match("say a.b here"))
		assert.False(t, m.Match("say axb here"))
	})

	t.Run("substring semantics", func(t *testing.T) {
		m, err := Compile(Term{Raw: "apple"})
		require.NoError(t, err)

		assert.True(t, m.Match("apple"))
		assert.True(t, m.Match("an apple pie"))
		assert.False(t, m.Match("Apple pie"))
	})

	t.Run("unbalanced bracket compiles as literal", func(t *testing.T) {
		m, err := Compile(Term{Raw: "foo[bar"})
		require.NoError(t, err)

		assert.True(t, m.Match("a foo[bar line"))
	})
}

func TestCompileRegex(t *testing.T) {
	t.Run("metacharacters are interpreted", func(t *testing.T) {
		m, err := Compile(Term{Raw: "a.b", Regex: true})
		require.NoError(t, err)

		assert.True(t, m.Match("axb"))
		assert.True(t, m.Match("a.b"))
		assert.False(t, m.Match("ab"))
	})

	t.Run("search not full match", func(t *testing.T) {
		m, err := Compile(Term{Raw: "ba+n", Regex: true})
		require.NoError(t, err)

		assert.True(t, m.Match("urbaaana"))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := Compile(Term{Raw: "foo[bar", Regex: true})
		require.Error(t, err)

		var perr *InvalidPatternError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "foo[bar", perr.Pattern)
	})
}

func TestCompileIgnoreCase(t *testing.T) {
	t.Run("literal", func(t *testing.T) {
		m, err := Compile(Term{Raw: "Foo", IgnoreCase: true})
		require.NoError(t, err)

		assert.True(t, m.Match("foo"))
		assert.True(t, m.Match("FOO"))
		assert.True(t, m.Match("fOO"))
	})

	t.Run("regex", func(t *testing.T) {
		m, err := Compile(Term{Raw: "^foo", Regex: true, IgnoreCase: true})
		require.NoError(t, err)

		// The flag must not disturb anchor behavior.
		assert.True(t, m.Match("FOOBAR"))
		assert.False(t, m.Match("barFOO"))
	})
}
