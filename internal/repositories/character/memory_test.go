package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/numeric"
	mockclock "github.com/KirkDiggler/vop-sheet/internal/pkg/clock/mock"
	"github.com/KirkDiggler/vop-sheet/internal/repositories/character"
	"github.com/KirkDiggler/vop-sheet/internal/testutils"
	"github.com/KirkDiggler/vop-sheet/internal/testutils/builders"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	repo      character.Repository
	ctx       context.Context
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.repo = character.NewMemory(&character.MemoryConfig{Clock: s.mockClock})
	s.ctx = context.Background()
}

func (s *MemoryRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MemoryRepositoryTestSuite) TestSavedAtFollowsClock() {
	first := savedAt
	second := savedAt.Add(90 * time.Second)
	local := time.FixedZone("UTC+2", 2*60*60)

	gomock.InOrder(
		s.mockClock.EXPECT().Now().Return(first.In(local)),
		s.mockClock.EXPECT().Now().Return(second),
	)

	sheet := builders.NewCharacterBuilder().
		WithName(testutils.TestCharacterName).
		WithRaceTalent("Dwarf", "Stonecunning").
		WithLevel(3).
		WithAbility(entities.Phy, 14).
		Build()

	out, err := s.repo.Save(s.ctx, character.SaveInput{Slot: testutils.TestSlot, Character: sheet})
	s.Require().NoError(err)
	s.Equal(first, out.SavedAt)
	s.Equal(time.UTC, out.SavedAt.Location())

	sheet.Level = numeric.Of(4)
	out, err = s.repo.Save(s.ctx, character.SaveInput{Slot: testutils.TestSlot, Character: sheet})
	s.Require().NoError(err)
	s.Equal(second, out.SavedAt)

	loaded, err := s.repo.Load(s.ctx, character.LoadInput{Slot: testutils.TestSlot})
	s.Require().NoError(err)
	s.Equal(second, loaded.SavedAt)
	s.Equal(sheet, loaded.Character)
	s.Equal("Dwarf | Stonecunning", loaded.Character.RaceTalent)
}

func (s *MemoryRepositoryTestSuite) TestFailedValidationDoesNotReadClock() {
	_, err := s.repo.Save(s.ctx, character.SaveInput{Slot: "", Character: entities.NewCharacter()})
	s.Error(err)
}
