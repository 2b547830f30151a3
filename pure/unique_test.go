package pure_test

import (
	"strings"
	"testing"

	"github.com/on-the-ground/pureutil/pure"
	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{3, 7, 5, 8, 6, 9}, pure.Unique([]int{3, 7, 5, 8, 7, 6, 3, 9}))
}

func TestUnique_DoesNotMutateInput(t *testing.T) {
	in := []string{"b", "a", "b", "c", "a"}
	out := pure.Unique(in)
	assert.Equal(t, []string{"b", "a", "c"}, out)
	assert.Equal(t, []string{"b", "a", "b", "c", "a"}, in)
}

func TestUnique_Idempotent(t *testing.T) {
	once := pure.Unique([]int{1, 1, 2, 3, 2})
	assert.Equal(t, once, pure.Unique(once))
}

func TestUnique_Empty(t *testing.T) {
	out := pure.Unique[int](nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestUniqueFunc(t *testing.T) {
	type tagged struct {
		Name string
		Tags []string // not comparable
	}
	in := []tagged{
		{Name: "A", Tags: []string{"x"}},
		{Name: "b"},
		{Name: "a", Tags: []string{"y"}},
	}
	out := pure.UniqueFunc(in, func(v tagged) string { return strings.ToLower(v.Name) })
	assert.Equal(t, []tagged{in[0], in[1]}, out)
}
