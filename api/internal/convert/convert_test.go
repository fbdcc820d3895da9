package convert

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	out string
	err error
}

func (f *fakeEngine) Name() string     { return "fake" }
func (f *fakeEngine) GetModel() string { return "fake-model" }
func (f *fakeEngine) Translate(_ context.Context, _ string) (string, error) {
	return f.out, f.err
}

const procInput = "CREATE PROCEDURE dbo.Foo AS BEGIN SELECT 1 END"

func TestConvertEmptyInput(t *testing.T) {
	c := New(&fakeEngine{})
	require.Equal(t, MsgEmptyInput, c.Convert(context.Background(), ""))
	require.Equal(t, MsgEmptyInput, c.Convert(context.Background(), "   \n\t"))
}

func TestConvertNoDeclaration(t *testing.T) {
	c := New(&fakeEngine{})
	require.Equal(t, MsgNoProcedure, c.Convert(context.Background(), "SELECT 1"))
}

func TestConvertNotConfigured(t *testing.T) {
	c := New(nil)
	require.False(t, c.Enabled())
	require.Equal(t, MsgNotConfigured, c.Convert(context.Background(), procInput))
}

func TestConvertTranslateFailure(t *testing.T) {
	c := New(&fakeEngine{err: errors.New("401 unauthorized")})
	require.Equal(t, MsgTranslateErr, c.Convert(context.Background(), procInput))
}

func TestConvertSuccessBanner(t *testing.T) {
	c := New(&fakeEngine{out: cleanFunction})
	out := c.Convert(context.Background(), procInput)
	require.Equal(t, successBanner+cleanFunction, out)
}

func TestConvertWarningBanner(t *testing.T) {
	// Output missing LANGUAGE plpgsql: banner lists it, translation follows
	// unmodified.
	noLang := strings.Replace(cleanFunction, "LANGUAGE plpgsql\n", "", 1)
	c := New(&fakeEngine{out: noLang})

	out := c.Convert(context.Background(), procInput)
	require.True(t, strings.HasPrefix(out, warningHeader))
	require.Contains(t, out, "-- • Missing LANGUAGE plpgsql\n")
	require.True(t, strings.HasSuffix(out, warningFooter+noLang))
}

func TestCountWarnings(t *testing.T) {
	require.Equal(t, 0, CountWarnings(MsgEmptyInput))
	require.Equal(t, 0, CountWarnings(successBanner+"SELECT 1"))

	c := New(&fakeEngine{out: "SELECT @x"})
	out := c.Convert(context.Background(), procInput)
	require.Equal(t, len(Validate("SELECT @x")), CountWarnings(out))
}

func TestConvertIsDeterministic(t *testing.T) {
	c := New(&fakeEngine{out: "not sql at all"})
	first := c.Convert(context.Background(), procInput)
	second := c.Convert(context.Background(), procInput)
	require.Equal(t, first, second)
}
