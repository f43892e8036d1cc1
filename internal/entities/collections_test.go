package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/errors"
)

type CollectionsTestSuite struct {
	suite.Suite
	character *entities.Character
}

func TestCollectionsTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionsTestSuite))
}

func (s *CollectionsTestSuite) SetupTest() {
	c, err := entities.NewCharacter().WithField("weapons", []entities.WeaponRow{
		{Name: "Dagger"}, {Name: "Longsword"}, {Name: "Shortbow"},
	})
	s.Require().NoError(err)
	s.character = c
}

func (s *CollectionsTestSuite) names(c *entities.Character) []string {
	var out []string
	for _, w := range c.Weapons {
		out = append(out, w.Name)
	}
	return out
}

func (s *CollectionsTestSuite) TestEveryCollectionIsAddressable() {
	for _, col := range entities.Collections {
		s.Run(col.String(), func() {
			s.True(col.IsValid())
			n, err := s.character.RowCount(col)
			s.Require().NoError(err)

			fields, err := s.character.RowFields(col)
			s.Require().NoError(err)
			s.NotEmpty(fields)

			grown, err := s.character.WithRowAppended(col)
			s.Require().NoError(err)
			count, err := grown.RowCount(col)
			s.Require().NoError(err)
			s.Equal(n+1, count)

			edited, err := grown.WithRowCell(col, n, fields[0], "value")
			s.Require().NoError(err)
			v, err := edited.RowCell(col, n, fields[0])
			s.Require().NoError(err)
			s.Equal("value", v)
		})
	}
}

func (s *CollectionsTestSuite) TestUnknownCollection() {
	s.False(entities.Collection("skills").IsValid())
	_, err := s.character.RowCount("skills")
	s.True(errors.IsInvalidArgument(err))
	_, err = s.character.WithRowMoved("pets", 0, 1)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CollectionsTestSuite) TestWithRowCell() {
	c, err := s.character.WithRowCell(entities.CollectionWeapons, 1, "dmg", "1d10")
	s.Require().NoError(err)
	s.Equal("1d10", c.Weapons[1].Damage)
	s.Equal("", s.character.Weapons[1].Damage)
	s.Equal(s.character.Weapons[0], c.Weapons[0])

	_, err = s.character.WithRowCell(entities.CollectionWeapons, 1, "weight", "3")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.character.WithRowCell(entities.CollectionWeapons, 3, "dmg", "1")
	s.True(errors.IsOutOfRange(err))
}

func (s *CollectionsTestSuite) TestWithRowMoved() {
	c, err := s.character.WithRowMoved(entities.CollectionWeapons, 0, 2)
	s.Require().NoError(err)
	s.Equal([]string{"Longsword", "Shortbow", "Dagger"}, s.names(c))
	s.Equal([]string{"Dagger", "Longsword", "Shortbow"}, s.names(s.character))

	_, err = s.character.WithRowMoved(entities.CollectionWeapons, 0, 3)
	s.True(errors.IsOutOfRange(err))
}

func (s *CollectionsTestSuite) TestWithRowRemovedAndInserted() {
	c, err := s.character.WithRowRemoved(entities.CollectionWeapons, 1)
	s.Require().NoError(err)
	s.Equal([]string{"Dagger", "Shortbow"}, s.names(c))

	c, err = c.WithRowInserted(entities.CollectionWeapons, 0)
	s.Require().NoError(err)
	s.Equal([]string{"", "Dagger", "Shortbow"}, s.names(c))

	_, err = c.WithRowRemoved(entities.CollectionWeapons, 5)
	s.True(errors.IsOutOfRange(err))
}
