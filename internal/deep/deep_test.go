package deep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type profile struct {
	Name string
	Tags []string
}

func TestIsNil_Sentinels(t *testing.T) {
	t.Parallel()

	var untyped any
	assert.True(t, IsNil(untyped))

	var p *profile
	assert.True(t, IsNil(p))

	var fn func()
	assert.True(t, IsNil(fn))
}

func TestIsNil_ValuesArePresent(t *testing.T) {
	t.Parallel()

	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil(false))

	var m map[string]int
	assert.False(t, IsNil(m)) // nil map is still a value, not the sentinel

	assert.False(t, IsNil([]int{}))
	assert.False(t, IsNil(profile{}))
}

func TestClone_Isolation(t *testing.T) {
	t.Parallel()

	src := profile{Name: "ada", Tags: []string{"a", "b"}}
	dst := Clone(src)

	dst.Tags[0] = "mutated"
	dst.Name = "other"

	assert.Equal(t, "ada", src.Name)
	assert.Equal(t, []string{"a", "b"}, src.Tags)
}

func TestClone_Map(t *testing.T) {
	t.Parallel()

	src := map[string][]int{"k": {1, 2}}
	dst := Clone(src)

	dst["k"][0] = 99
	dst["extra"] = []int{3}

	assert.Equal(t, []int{1, 2}, src["k"])
	assert.NotContains(t, src, "extra")
}

func TestClone_PointerGetsOwnAllocation(t *testing.T) {
	t.Parallel()

	src := &profile{Name: "ada", Tags: []string{"a"}}
	dst := Clone(src)

	if dst == src {
		t.Fatal("clone returned the original pointer")
	}

	dst.Name = "other"
	dst.Tags[0] = "mutated"

	assert.Equal(t, "ada", src.Name)
	assert.Equal(t, []string{"a"}, src.Tags)
}

func TestClone_PointerToScalar(t *testing.T) {
	t.Parallel()

	n := 1
	p := Clone(&n)

	*p = 99
	assert.Equal(t, 1, n)
}

func TestClone_Scalars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Clone(42))
	assert.Equal(t, "s", Clone("s"))

	var p *profile
	assert.Nil(t, Clone(p))
}
