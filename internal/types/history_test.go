package types

import "strconv"

func (s *UnitTestSuite) TestPrependRecentKeepsNewestFirst() {
	var rs []string
	for i := 0; i < 5; i++ {
		rs = PrependRecent(rs, strconv.Itoa(i), HistoryCapacity)
	}
	s.Equal([]string{"4", "3", "2", "1", "0"}, rs)
}

func (s *UnitTestSuite) TestPrependRecentCapped() {
	var rs []int
	for i := 0; i < 40; i++ {
		rs = PrependRecent(rs, i, HistoryCapacity)
		s.LessOrEqual(len(rs), HistoryCapacity)
	}
	s.Len(rs, HistoryCapacity)
	s.Equal(39, rs[0])
	s.Equal(24, rs[HistoryCapacity-1])
}

func (s *UnitTestSuite) TestPrependRecentDoesNotAlias() {
	base := []int{3, 2, 1}
	out := PrependRecent(base, 4, HistoryCapacity)
	s.Equal([]int{4, 3, 2, 1}, out)
	s.Equal([]int{3, 2, 1}, base)
}

func (s *UnitTestSuite) TestPrependRecentZeroCap() {
	s.Empty(PrependRecent([]int{1}, 2, 0))
}
