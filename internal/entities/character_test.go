package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/numeric"
)

type CharacterTestSuite struct {
	suite.Suite
	character *entities.Character
}

func TestCharacterTestSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) SetupTest() {
	s.character = entities.NewCharacter()
}

func (s *CharacterTestSuite) TestNewCharacterDefaults() {
	c := s.character
	s.Equal(numeric.Of(1), c.Level)
	s.True(c.Age.IsBlank())
	s.Equal("", c.RaceTalent)
	s.Len(c.Abilities, 5)
	s.Len(c.Skills, 14)
	s.Equal("Arcana", c.Skills[0].Key)
	s.Equal(entities.Int, c.Skills[0].Ability)
	s.Len(c.Actions, 3)
	s.Len(c.SupportActions, 3)
	s.Len(c.Reactions, 6)
	s.Len(c.Specials, 3)
	s.Len(c.Spells, 12)
	s.Len(c.Talents, 10)
	s.Len(c.Equipment, 10)
	s.NotNil(c.Weapons)
	s.Empty(c.Weapons)
	s.NotNil(c.Armor)
	s.Empty(c.Armor)
	s.Equal(entities.Int, c.Spellcasting.Ability)
}

func (s *CharacterTestSuite) TestWithFieldReturnsNewValue() {
	updated, err := s.character.WithField("name", "Brannoc")
	s.Require().NoError(err)
	s.NotSame(s.character, updated)
	s.Equal("Brannoc", updated.Name)
	s.Equal("", s.character.Name)
}

func (s *CharacterTestSuite) TestWithFieldNumbers() {
	testCases := []struct {
		name     string
		value    interface{}
		expected numeric.Number
	}{
		{"number", numeric.Of(4), numeric.Of(4)},
		{"int", 7, numeric.Of(7)},
		{"whole float", float64(12), numeric.Of(12)},
		{"signed text", "+3", numeric.Of(3)},
		{"partial text", "-", numeric.Blank()},
		{"invalid text", "abc", numeric.Blank()},
		{"nil", nil, numeric.Blank()},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			updated, err := s.character.WithField("maxHP", tc.value)
			s.Require().NoError(err)
			s.Equal(tc.expected, updated.MaxHP)
		})
	}
}

func (s *CharacterTestSuite) TestWithFieldErrors() {
	testCases := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"unknown key", "charisma", "x"},
		{"text needs string", "name", 5},
		{"fractional number", "level", 2.5},
		{"number out of range", "level", 1e300},
		{"number wrong type", "level", true},
		{"rows wrong type", "actions", []entities.SpellRow{}},
		{"unknown desc", "desc.secret", "x"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			updated, err := s.character.WithField(tc.key, tc.value)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Nil(updated)
		})
	}
}

func (s *CharacterTestSuite) TestWithFieldStructured() {
	rows := []entities.ActionRow{{Ability: "Strike", ToHit: "+4"}}
	updated, err := s.character.WithField("actions", rows)
	s.Require().NoError(err)
	s.Equal(rows, updated.Actions)

	updated, err = updated.WithField("desc.nemesis", "The Grey Warden")
	s.Require().NoError(err)
	s.Equal("The Grey Warden", updated.Desc.Nemesis)
	s.Equal("", s.character.Desc.Nemesis)
}

func (s *CharacterTestSuite) TestField() {
	c, err := s.character.WithField("speed", 30)
	s.Require().NoError(err)
	c, err = c.WithField("desc.area", "Harrow Vale")
	s.Require().NoError(err)

	v, err := c.Field("speed")
	s.Require().NoError(err)
	s.Equal("30", v)

	v, err = c.Field("age")
	s.Require().NoError(err)
	s.Equal("", v)

	v, err = c.Field("desc.area")
	s.Require().NoError(err)
	s.Equal("Harrow Vale", v)

	_, err = c.Field("actions")
	s.True(errors.IsInvalidArgument(err))

	s.True(entities.IsScalarField("name"))
	s.False(entities.IsScalarField("talents"))
	s.Contains(entities.ScalarFieldKeys(), "desc.personality")
	s.NotContains(entities.ScalarFieldKeys(), "abilities")
}

func (s *CharacterTestSuite) TestAbilitySaveScenario() {
	c, err := s.character.WithAbilityBase(entities.Phy, numeric.Of(14))
	s.Require().NoError(err)
	s.Equal("+2", numeric.FormatSigned(c.Ability(entities.Phy).Mod()))
	s.Equal("+2", numeric.FormatSigned(c.Ability(entities.Phy).EffectiveSave()))
	s.True(c.Ability(entities.Phy).Save.IsBlank())

	c, err = c.WithAbilitySave(entities.Phy, numeric.ParseSigned("+5"))
	s.Require().NoError(err)
	s.Equal("+5", numeric.FormatSigned(c.Ability(entities.Phy).EffectiveSave()))

	c, err = c.WithAbilityBase(entities.Phy, numeric.Of(16))
	s.Require().NoError(err)
	s.Equal("+3", numeric.FormatSigned(c.Ability(entities.Phy).Mod()))
	s.Equal("+5", numeric.FormatSigned(c.Ability(entities.Phy).EffectiveSave()))

	c, err = c.WithAbilitySave(entities.Phy, numeric.Blank())
	s.Require().NoError(err)
	s.Equal("+3", numeric.FormatSigned(c.Ability(entities.Phy).EffectiveSave()))
}

func (s *CharacterTestSuite) TestAbilityUnknownKey() {
	_, err := s.character.WithAbilityBase("Str", numeric.Of(10))
	s.True(errors.IsInvalidArgument(err))
	_, err = s.character.WithAbilitySave("Wis", numeric.Of(1))
	s.True(errors.IsInvalidArgument(err))
}

func (s *CharacterTestSuite) TestSkills() {
	c, err := s.character.WithAbilityBase(entities.Agi, numeric.Of(15))
	s.Require().NoError(err)

	total, err := c.SkillTotal("Stealth")
	s.Require().NoError(err)
	s.Equal(numeric.Of(2), total)

	c, err = c.WithSkillBonus("Stealth", numeric.Of(3))
	s.Require().NoError(err)
	total, err = c.SkillTotal("Stealth")
	s.Require().NoError(err)
	s.Equal(numeric.Of(5), total)

	total, err = c.SkillTotal("Lore")
	s.Require().NoError(err)
	s.True(total.IsBlank(), "Int has no base yet")

	_, err = c.WithSkillBonus("Cooking", numeric.Of(1))
	s.True(errors.IsInvalidArgument(err))
}

func (s *CharacterTestSuite) TestSpellcasting() {
	c, err := s.character.WithAbilityBase(entities.Cha, numeric.Of(17))
	s.Require().NoError(err)

	c, err = c.WithSpellcastingAbility(entities.Cha)
	s.Require().NoError(err)
	s.Equal(numeric.Of(3), c.SpellcastingMod())
	s.Equal(numeric.Of(3), c.Spellcasting.SpellAttack, "blank attack is seeded")
	s.Equal(numeric.Of(13), c.SpellSaveDC())

	c = c.WithSpellAttack(numeric.Of(6))
	c, err = c.WithAbilityBase(entities.Int, numeric.Of(8))
	s.Require().NoError(err)
	c, err = c.WithSpellcastingAbility(entities.Int)
	s.Require().NoError(err)
	s.Equal(numeric.Of(6), c.Spellcasting.SpellAttack, "entered attack is kept")
	s.Equal(numeric.Of(9), c.SpellSaveDC())

	c = c.WithSpellcastingDomain("Chaos")
	s.Equal("Chaos", c.Spellcasting.Domain)

	_, err = c.WithSpellcastingAbility(entities.Phy)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CharacterTestSuite) TestCloneIsDeep() {
	c, err := s.character.WithField("talents", []entities.TalentRow{{Name: "Weapon Training", ChildSelections: []string{"Rope"}}})
	s.Require().NoError(err)

	clone := c.Clone()
	clone.Talents[0].ChildSelections[0] = "Lamp"
	clone.Actions[0].Ability = "changed"
	score := clone.Abilities[entities.Phy]
	score.Base = numeric.Of(18)
	clone.Abilities[entities.Phy] = score

	s.Equal("Rope", c.Talents[0].ChildSelections[0])
	s.Equal("", c.Actions[0].Ability)
	s.True(c.Abilities[entities.Phy].Base.IsBlank())
}
