package ptr

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type pointerSuite struct {
	suite.Suite
}

func (s *pointerSuite) TestString() {
	p := String(`abc123`)
	s.Equal(`abc123`, *p)
}

func (s *pointerSuite) TestStringOr() {
	s.Equal("1", StringOr(nil, "1"))
	s.Equal("", StringOr(String(""), "1"))
	s.Equal("3", StringOr(String("3"), "1"))
}

func TestPointerSuite(t *testing.T) {
	suite.Run(t, new(pointerSuite))
}
