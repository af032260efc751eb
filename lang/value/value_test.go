package value_test

import (
	"testing"

	"github.com/dolthub/swiss"
	"github.com/stretchr/testify/require"
	"github.com/tjbuckner/golox/lang/token"
	"github.com/tjbuckner/golox/lang/value"
)

func TestNumberString(t *testing.T) {
	require.Equal(t, "3", value.Number(3).String())
	require.Equal(t, "3.5", value.Number(3.5).String())
	require.Equal(t, "-2", value.Number(-2).String())
}

func TestNumberBinary(t *testing.T) {
	sum, ok := value.Number(2).Binary(token.PLUS, value.Number(3), value.Left)
	require.True(t, ok)
	require.Equal(t, value.Number(5), sum)

	_, ok = value.Number(2).Binary(token.PLUS, value.String("x"), value.Left)
	require.False(t, ok)
}

func TestStringConcat(t *testing.T) {
	v, ok := value.String("foo").Binary(token.PLUS, value.String("bar"), value.Left)
	require.True(t, ok)
	require.Equal(t, value.String("foobar"), v)
}

func TestTruth(t *testing.T) {
	require.False(t, value.Nil{}.Truth())
	require.False(t, value.Bool(false).Truth())
	require.True(t, value.Bool(true).Truth())
	require.True(t, value.Number(0).Truth())
	require.True(t, value.String("").Truth())
}

func TestBoolCmp(t *testing.T) {
	require.Equal(t, -1, value.Bool(false).Cmp(value.Bool(true)))
	require.Equal(t, 1, value.Bool(true).Cmp(value.Bool(false)))
	require.Equal(t, 0, value.Bool(true).Cmp(value.Bool(true)))
}

func TestNilCmp(t *testing.T) {
	require.Equal(t, 0, value.Nil{}.Cmp(value.Nil{}))
}

func TestEqual(t *testing.T) {
	require.True(t, value.Equal(value.Number(1), value.Number(1)))
	require.False(t, value.Equal(value.Number(1), value.String("1")))
	require.True(t, value.Equal(value.Nil{}, value.Nil{}))
}

func TestClassFindMethodThroughSuperclass(t *testing.T) {
	methodsA := swiss.NewMap[string, *value.Function](1)
	methodsA.Put("greet", &value.Function{})
	a := value.NewClass("A", nil, methodsA)

	methodsB := swiss.NewMap[string, *value.Function](1)
	b := value.NewClass("B", a, methodsB)

	_, ok := b.FindMethod("greet")
	require.True(t, ok)

	_, ok = b.FindMethod("missing")
	require.False(t, ok)
}

func TestInstanceAttrFieldShadowsMethod(t *testing.T) {
	methods := swiss.NewMap[string, *value.Function](1)
	methods.Put("x", &value.Function{})
	class := value.NewClass("Point", nil, methods)
	inst := value.NewInstance(class)
	inst.SetField("x", value.Number(42))

	v, ok := inst.Attr("x")
	require.True(t, ok)
	require.Equal(t, value.Number(42), v)

	_, ok = inst.Attr("y")
	require.False(t, ok)
}
