package unresolved_test

import (
	"testing"

	"github.com/alexparlett/angelscript-go/internal/unresolved"
	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "DuplicateDeclaration", unresolved.ErrDuplicateDeclaration.String())
	require.Equal(t, "InvalidMixinMember", unresolved.ErrInvalidMixinMember.String())
	require.Equal(t, "Unknown", unresolved.ErrorKind(99).String())
}
