package slice

import (
	"testing"
)

func TestReverseInPlace(t *testing.T) {
	s := []int{1, 2, 3, 4}
	ReverseInPlace(s)
	reference := []int{4, 3, 2, 1}
	for i, v := range reference {
		if s[i] != v {
			t.Errorf("position %v is %v, should be %v\n", i, s[i], v)
		}
	}
	empty := []int{}
	ReverseInPlace(empty)
}

func TestRemoveFirst(t *testing.T) {
	s := []int{1, 2, 3, 2}
	s, ok := RemoveFirst(s, func(v int) bool { return v == 2 })
	if !ok {
		t.Errorf("2 should have been removed\n")
	}
	if len(s) != 3 || s[0] != 1 || s[1] != 3 || s[2] != 2 {
		t.Errorf("wrong result %v\n", s)
	}
	if _, ok := RemoveFirst(s, func(v int) bool { return v == 9 }); ok {
		t.Errorf("nothing should have been removed\n")
	}
}

func TestContainsAndCount(t *testing.T) {
	s := []string{"a", "b", "a"}
	if !Contains(s, "b") || Contains(s, "c") {
		t.Errorf("Contains is wrong\n")
	}
	if c := Count(s, func(v string) bool { return v == "a" }); c != 2 {
		t.Errorf("Count is %v, should be 2\n", c)
	}
}
