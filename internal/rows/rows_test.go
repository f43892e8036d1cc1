package rows_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/rows"
)

type RowsTestSuite struct {
	suite.Suite
	seq []string
}

func TestRowsTestSuite(t *testing.T) {
	suite.Run(t, new(RowsTestSuite))
}

func (s *RowsTestSuite) SetupTest() {
	s.seq = []string{"a", "b", "c", "d"}
}

func (s *RowsTestSuite) TestInsertAt() {
	testCases := []struct {
		name     string
		index    int
		expected []string
	}{
		{"front", 0, []string{"x", "a", "b", "c", "d"}},
		{"middle", 2, []string{"a", "b", "x", "c", "d"}},
		{"end", 4, []string{"a", "b", "c", "d", "x"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := rows.InsertAt(s.seq, tc.index, "x")
			s.Require().NoError(err)
			s.Equal(tc.expected, out)
			s.Equal([]string{"a", "b", "c", "d"}, s.seq)
		})
	}
}

func (s *RowsTestSuite) TestInsertAtOutOfRange() {
	_, err := rows.InsertAt(s.seq, 5, "x")
	s.True(errors.IsOutOfRange(err))

	_, err = rows.InsertAt(s.seq, -1, "x")
	s.True(errors.IsOutOfRange(err))
}

func (s *RowsTestSuite) TestRemoveAt() {
	out, err := rows.RemoveAt(s.seq, 1)
	s.Require().NoError(err)
	s.Equal([]string{"a", "c", "d"}, out)
	s.Equal([]string{"a", "b", "c", "d"}, s.seq)

	_, err = rows.RemoveAt(s.seq, 4)
	s.True(errors.IsOutOfRange(err))
	s.Equal(4, errors.GetMeta(err)["size"])
}

func (s *RowsTestSuite) TestMoveAdjacentIsSelfInverse() {
	for i := 0; i < len(s.seq)-1; i++ {
		j := i + 1
		moved, err := rows.Move(s.seq, i, j)
		s.Require().NoError(err)
		back, err := rows.Move(moved, j, i)
		s.Require().NoError(err)
		s.Equal(s.seq, back, "move %d<->%d", i, j)

		moved, err = rows.Move(s.seq, j, i)
		s.Require().NoError(err)
		back, err = rows.Move(moved, i, j)
		s.Require().NoError(err)
		s.Equal(s.seq, back, "move %d<->%d", j, i)
	}
}

func (s *RowsTestSuite) TestMoveNonAdjacentUsesPostRemovalIndex() {
	seq := []string{"a", "b", "c"}

	// "to" indexes the shortened sequence, so the moved row lands at 2 and
	// not in front of "c".
	moved, err := rows.Move(seq, 0, 2)
	s.Require().NoError(err)
	s.Equal([]string{"b", "c", "a"}, moved)

	moved, err = rows.Move(seq, 2, 0)
	s.Require().NoError(err)
	s.Equal([]string{"c", "a", "b"}, moved)

	back, err := rows.Move(moved, 0, 2)
	s.Require().NoError(err)
	s.Equal(seq, back)
}

func (s *RowsTestSuite) TestMoveFourElements() {
	moved, err := rows.Move(s.seq, 0, 2)
	s.Require().NoError(err)
	s.Equal([]string{"b", "c", "a", "d"}, moved)

	moved, err = rows.Move(s.seq, 1, 3)
	s.Require().NoError(err)
	s.Equal([]string{"a", "c", "d", "b"}, moved)

	moved, err = rows.Move(s.seq, 3, 1)
	s.Require().NoError(err)
	s.Equal([]string{"a", "d", "b", "c"}, moved)
}

func (s *RowsTestSuite) TestMoveSameIndexCopies() {
	out, err := rows.Move(s.seq, 2, 2)
	s.Require().NoError(err)
	s.Equal(s.seq, out)
	out[0] = "z"
	s.Equal("a", s.seq[0])
}

func (s *RowsTestSuite) TestMoveOutOfRange() {
	_, err := rows.Move(s.seq, 4, 0)
	s.True(errors.IsOutOfRange(err))

	_, err = rows.Move(s.seq, 0, 4)
	s.True(errors.IsOutOfRange(err))
}

func (s *RowsTestSuite) TestSetAt() {
	type row struct {
		Name string
		Note string
	}
	seq := []row{{Name: "a"}, {Name: "b", Note: "keep"}}

	out, err := rows.SetAt(seq, 1, func(r row) row {
		r.Name = "B"
		return r
	})
	s.Require().NoError(err)
	s.Equal([]row{{Name: "a"}, {Name: "B", Note: "keep"}}, out)
	s.Equal("b", seq[1].Name)

	_, err = rows.SetAt(seq, 2, func(r row) row { return r })
	s.True(errors.IsOutOfRange(err))
}

func (s *RowsTestSuite) TestAppend() {
	out := rows.Append(s.seq, "e")
	s.Equal([]string{"a", "b", "c", "d", "e"}, out)
	s.Len(s.seq, 4)
}

func (s *RowsTestSuite) TestSeed() {
	s.Equal([]string{"", "", ""}, rows.Seed([]string(nil), 3, ""))
	s.Equal(s.seq, rows.Seed(s.seq, 3, ""))
	s.Empty(rows.Seed([]string{}, 0, ""))
}
