package atomic

import (
	"testing"

	check "gopkg.in/check.v1"
)

// Test is gocheck's entry point into the standard testing package,
// following gsingh-ds-go-lock-free-ring-buffer's go.mod convention of
// running its sibling lock-free data structure's suite this way.
func Test(t *testing.T) { check.TestingT(t) }

type StackSuite struct{}

var _ = check.Suite(&StackSuite{})

func (s *StackSuite) TestEmptyPopFails(c *check.C) {
	st := NewStack[string]()
	_, ok := st.Pop()
	c.Assert(ok, check.Equals, false)
}

func (s *StackSuite) TestPushThenPopReturnsSameNode(c *check.C) {
	st := NewStack[string]()
	n := NewStackNode[string]()
	n.Value = "hello"
	st.Push(n)

	got, ok := st.Pop()
	c.Assert(ok, check.Equals, true)
	c.Assert(got.Value, check.Equals, "hello")
	c.Assert(st.Empty(), check.Equals, true)
}

func (s *StackSuite) TestPushOrderReversedOnPop(c *check.C) {
	st := NewStack[int]()
	for _, v := range []int{1, 2, 3} {
		n := NewStackNode[int]()
		n.Value = v
		st.Push(n)
	}

	var got []int
	for {
		n, ok := st.Pop()
		if !ok {
			break
		}
		got = append(got, n.Value)
	}
	c.Assert(got, check.DeepEquals, []int{3, 2, 1})
}
