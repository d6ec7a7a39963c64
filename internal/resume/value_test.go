package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Kinds(t *testing.T) {
	v, ok := Parse([]byte(`{"s":"x","n":2.5,"t":true,"f":false,"z":null,"l":[1],"m":{"k":"v"}}`))
	require.True(t, ok)
	require.Equal(t, KindMap, v.Kind)
	assert.Equal(t, []string{"s", "n", "t", "f", "z", "l", "m"}, v.Keys)

	assert.Equal(t, KindString, v.Get("s").Kind)
	assert.Equal(t, KindNumber, v.Get("n").Kind)
	assert.Equal(t, "2.5", v.Get("n").Text())
	assert.Equal(t, "true", v.Get("t").Text())
	assert.Equal(t, "false", v.Get("f").Text())
	assert.Equal(t, KindNull, v.Get("z").Kind)
	assert.Equal(t, KindList, v.Get("l").Kind)
	assert.Equal(t, "v", v.Get("m").Get("k").Text())
	assert.Equal(t, KindNull, v.Get("missing").Kind)
}

func TestParse_Invalid(t *testing.T) {
	_, ok := Parse([]byte(`{`))
	assert.False(t, ok)

	_, ok = Parse(nil)
	assert.False(t, ok)
}

func TestValue_AccessorsOnWrongKinds(t *testing.T) {
	s := Value{Kind: KindString, Str: "x"}
	assert.Equal(t, Null, s.Get("k"))
	assert.Nil(t, s.Elems())

	list := Value{Kind: KindList, List: []Value{s}}
	assert.Equal(t, "", list.Text())
	assert.Len(t, list.Elems(), 1)
}

func TestFlatten_PreservesKeyOrder(t *testing.T) {
	v, ok := Parse([]byte(`{"b":"second-key-first","a":["x",{"z":"y"}]}`))
	require.True(t, ok)

	assert.Equal(t, []string{"second-key-first", "x", "y"}, Flatten(v))
}

func TestFlatten_ScalarAndNull(t *testing.T) {
	assert.Equal(t, []string{"solo"}, Flatten(Value{Kind: KindString, Str: "solo"}))
	assert.Equal(t, []string{}, Flatten(Null))
	assert.Equal(t, []string{"42"}, Flatten(Value{Kind: KindNumber, Num: 42}))
}
