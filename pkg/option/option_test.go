package option

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type account struct {
	Owner string
	Tags  []string
}

func TestFrom_ValueIsPresent(t *testing.T) {
	t.Parallel()

	o := From(5)
	assert.True(t, o.IsPresent())
	assert.False(t, o.IsAbsent())
	assert.Equal(t, 5, o.ValueOr(0))
}

func TestFrom_NilSentinelsAreAbsent(t *testing.T) {
	t.Parallel()

	var p *account
	assert.True(t, From(p).IsAbsent())

	var untyped any
	assert.True(t, From(untyped).IsAbsent())
}

func TestFrom_FalsyValuesArePresent(t *testing.T) {
	t.Parallel()

	assert.True(t, From(0).IsPresent())
	assert.True(t, From("").IsPresent())
	assert.True(t, From(false).IsPresent())
	assert.True(t, From([]int{}).IsPresent())
}

func TestSome_WrapsSentinelVerbatim(t *testing.T) {
	t.Parallel()

	var p *account
	o := Some(p)
	assert.True(t, o.IsPresent())
}

func TestNone(t *testing.T) {
	t.Parallel()

	o := None[int]()
	assert.True(t, o.IsAbsent())

	v, ok := o.Value()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestFromFallible(t *testing.T) {
	t.Parallel()

	o := FromFallible(func() (int, error) {
		return 0, errors.New("boom")
	})
	assert.True(t, o.IsAbsent())

	o = FromFallible(func() (int, error) {
		panic("boom")
	})
	assert.True(t, o.IsAbsent())

	o = FromFallible(func() (int, error) {
		return 42, nil
	})
	assert.Equal(t, 42, o.ValueOr(0))
}

func TestFromFallible_NilResultIsAbsent(t *testing.T) {
	t.Parallel()

	o := FromFallible(func() (*account, error) {
		return nil, nil
	})
	assert.True(t, o.IsAbsent())
}

func TestValueOrCompute(t *testing.T) {
	t.Parallel()

	computed := 0
	thunk := func() int {
		computed++
		return 7
	}

	assert.Equal(t, 5, Some(5).ValueOrCompute(thunk))
	assert.Equal(t, 0, computed, "thunk must stay uninvoked on Present")

	assert.Equal(t, 7, None[int]().ValueOrCompute(thunk))
	assert.Equal(t, 1, computed)
}

func TestValueOrSignal(t *testing.T) {
	t.Parallel()

	v := Some(3).ValueOrSignal(func(Option[int]) {
		t.Fatal("handler must not run on Present")
	})
	assert.Equal(t, 3, v)

	assert.PanicsWithValue(t, "absent", func() {
		None[int]().ValueOrSignal(func(Option[int]) {
			panic("absent")
		})
	})
}

func TestOrSignal(t *testing.T) {
	t.Parallel()

	o := Some(3).OrSignal(func(Option[int]) {
		t.Fatal("handler must not run on Present")
	})
	assert.Equal(t, 3, o.ValueOr(0))

	assert.Panics(t, func() {
		None[int]().OrSignal(func(o Option[int]) {
			panic(errors.New("stop"))
		})
	})
}

func TestValue_DefensiveCopy(t *testing.T) {
	t.Parallel()

	o := Some(account{Owner: "ada", Tags: []string{"a"}})

	extracted, ok := o.Value()
	assert.True(t, ok)

	extracted.Tags[0] = "mutated"
	extracted.Owner = "other"

	again, _ := o.Value()
	if again.Owner != "ada" || again.Tags[0] != "a" {
		t.Fatalf("internal state leaked through extraction: %+v", again)
	}
}

func TestValue_DefensiveCopyOnPointerPayload(t *testing.T) {
	t.Parallel()

	o := Some(&account{Owner: "ada", Tags: []string{"a"}})

	extracted, ok := o.Value()
	assert.True(t, ok)

	extracted.Owner = "other"
	extracted.Tags[0] = "mutated"

	again, _ := o.Value()
	if again.Owner != "ada" || again.Tags[0] != "a" {
		t.Fatalf("internal state leaked through pointer extraction: %+v", again)
	}
}

func TestValueOr_DefensiveCopy(t *testing.T) {
	t.Parallel()

	o := Some(map[string]int{"k": 1})

	m := o.ValueOr(nil)
	m["k"] = 99

	assert.Equal(t, 1, o.ValueOr(nil)["k"])
}

func TestIdAndCreatedAt_StampedPerConstruction(t *testing.T) {
	t.Parallel()

	a := Some(1)
	b := Some(1)

	assert.NotEqual(t, a.Id(), b.Id())
	assert.False(t, a.CreatedAt().IsZero())
}
