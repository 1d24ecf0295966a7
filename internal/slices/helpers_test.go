package slices_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/miruken-go/mixin/internal/slices"
	"github.com/stretchr/testify/suite"
)

type SlicesTestSuite struct {
	suite.Suite
}

func (suite *SlicesTestSuite) TestSlices() {
	suite.Run("Contains", func() {
		suite.True(slices.Contains([]string{"a", "b"}, "b"))
		suite.False(slices.Contains([]string{"a", "b"}, "c"))
	})

	suite.Run("Map", func() {
		suite.Equal([]string{"A", "B"}, slices.Map[string, string]([]string{"a", "b"}, strings.ToUpper))
		suite.Equal([]string{"0a", "1b"}, slices.Map[string, string]([]string{"a", "b"},
			func(i int, s string) string { return strconv.Itoa(i) + s }))
		suite.Nil(slices.Map[string, string](nil, strings.ToUpper))
	})

	suite.Run("Reduce", func() {
		sum := slices.Reduce([]int{1, 2, 3, 4}, 10, func(acc int, _ int, n int) int {
			return acc + n
		})
		suite.Equal(20, sum)
	})

	suite.Run("Last", func() {
		last, ok := slices.Last([]int{1, 2, 3})
		suite.True(ok)
		suite.Equal(3, last)
		_, ok = slices.Last([]int{})
		suite.False(ok)
	})

	suite.Run("Reversed", func() {
		in := []int{1, 2, 3}
		suite.Equal([]int{3, 2, 1}, slices.Reversed(in))
		suite.Equal([]int{1, 2, 3}, in)
		suite.Empty(slices.Reversed([]int{}))
	})
}

func TestSlicesTestSuite(t *testing.T) {
	suite.Run(t, new(SlicesTestSuite))
}
