package formula_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-alchemy/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
	"github.com/KirkDiggler/rpg-alchemy/internal/orchestrators/formula"
	formulamock "github.com/KirkDiggler/rpg-alchemy/internal/orchestrators/formula/mock"
	clockmock "github.com/KirkDiggler/rpg-alchemy/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-alchemy/internal/repositories/actor"
	actormock "github.com/KirkDiggler/rpg-alchemy/internal/repositories/actor/mock"
	alchemicalindex "github.com/KirkDiggler/rpg-alchemy/internal/repositories/alchemical_index"
	alchemicalindexmock "github.com/KirkDiggler/rpg-alchemy/internal/repositories/alchemical_index/mock"
	"github.com/KirkDiggler/rpg-alchemy/internal/testutils"
	"github.com/KirkDiggler/rpg-alchemy/internal/testutils/builders"
)

const testActorID = "actor-alchemist"

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockActorRepo *actormock.MockRepository
	mockIndexRepo *alchemicalindexmock.MockRepository
	mockClock     *clockmock.MockClock
	registry      *catalog.Registry
	orchestrator  formula.Service
	ctx           context.Context
	now           time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockActorRepo = actormock.NewMockRepository(s.ctrl)
	s.mockIndexRepo = alchemicalindexmock.NewMockRepository(s.ctrl)
	s.mockClock = clockmock.NewMockClock(s.ctrl)
	s.registry = catalog.NewRegistry(catalog.NewStatic("equipment", testutils.TestEquipmentRecords()...))
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	var err error
	s.orchestrator, err = formula.NewOrchestrator(&formula.Config{
		ActorRepo: s.mockActorRepo,
		IndexRepo: s.mockIndexRepo,
		Catalogs:  s.registry,
		Clock:     s.mockClock,
		Settings: alchemy.GrantSettings{
			Mode:           alchemy.GrantModeAuto,
			RequiredRarity: alchemy.RarityCommon,
		},
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) testIndex() *alchemy.Index {
	idx := alchemy.NewIndex()
	for _, record := range testutils.TestEquipmentRecords() {
		entry, err := alchemy.NewIndexEntry(record)
		if err != nil {
			continue
		}
		idx.Put(entry)
	}
	return idx
}

func (s *OrchestratorTestSuite) expectActor(a *alchemy.Actor) {
	s.mockActorRepo.EXPECT().
		Get(s.ctx, actor.GetInput{ID: a.ID}).
		Return(&actor.GetOutput{Actor: a}, nil)
}

func (s *OrchestratorTestSuite) expectIndex() {
	s.mockIndexRepo.EXPECT().
		Get(s.ctx, alchemicalindex.GetInput{}).
		Return(&alchemicalindex.GetOutput{Index: s.testIndex()}, nil)
}

// expectSave captures the saved actor
func (s *OrchestratorTestSuite) expectSave() *alchemy.Actor {
	saved := &alchemy.Actor{}
	s.mockActorRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input actor.SaveInput) (*actor.SaveOutput, error) {
			*saved = *input.Actor
			return &actor.SaveOutput{Actor: input.Actor}, nil
		})
	return saved
}

func (s *OrchestratorTestSuite) formulaIDs(a *alchemy.Actor) []string {
	ids := make([]string, 0, len(a.Formulas))
	for _, f := range a.Formulas {
		ids = append(ids, f.ID)
	}
	return ids
}

func (s *OrchestratorTestSuite) refIDs(refs []alchemy.RecordRef) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_AutoGrantsHigherTier() {
	a := builders.NewActor(testActorID).WithLevel(1).WithWatermark(1).
		WithFormulas(testutils.TanglefootLesserID).Build()
	s.expectActor(a)
	s.expectIndex()
	saved := s.expectSave()

	output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
		ActorID:  testActorID,
		NewLevel: 5,
	})

	s.Require().NoError(err)
	s.Equal(formula.OutcomeGranted, output.Outcome)
	s.Equal(1, output.PreviousLevel)
	s.Equal(5, output.NewLevel)
	s.Equal([]string{testutils.TanglefootGreaterID}, s.refIDs(output.Granted))
	s.Empty(output.Revoked)

	s.Equal([]string{testutils.TanglefootLesserID, testutils.TanglefootGreaterID}, s.formulaIDs(saved))
	granted := saved.Formulas[1]
	s.Equal(alchemy.AcquisitionLevelUp, granted.Acquisition.Source)
	s.Equal(5, granted.Acquisition.Level)
	s.Equal(s.now, granted.Acquisition.AcquiredAt)
	s.Equal(5, saved.Level)
	s.Require().NotNil(saved.PreviousLevel)
	s.Equal(5, *saved.PreviousLevel)
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_AutoWithPruning() {
	a := builders.NewActor(testActorID).WithWatermark(1).
		WithFormulas(testutils.TanglefootLesserID).Build()
	s.expectActor(a)
	s.expectIndex()
	saved := s.expectSave()

	output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
		ActorID:  testActorID,
		NewLevel: 5,
		Settings: &alchemy.GrantSettings{
			Mode:            alchemy.GrantModeAuto,
			PruneLowerTiers: true,
			RequiredRarity:  alchemy.RarityCommon,
		},
	})

	s.Require().NoError(err)
	s.Equal(formula.OutcomeGrantedAndRevoked, output.Outcome)
	s.Equal([]string{testutils.TanglefootGreaterID}, s.refIDs(output.Granted))
	s.Equal([]string{testutils.TanglefootLesserID}, s.refIDs(output.Revoked))
	s.Equal([]string{testutils.TanglefootGreaterID}, s.formulaIDs(saved))
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_DisabledStillAdvancesWatermark() {
	a := builders.NewActor(testActorID).WithWatermark(1).
		WithFormulas(testutils.TanglefootLesserID).Build()
	s.expectActor(a)
	saved := s.expectSave()

	output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
		ActorID:  testActorID,
		NewLevel: 5,
		Settings: &alchemy.GrantSettings{Mode: alchemy.GrantModeDisabled},
	})

	s.Require().NoError(err)
	s.Equal(formula.OutcomeNoOp, output.Outcome)
	s.Empty(output.Granted)
	s.Equal([]string{testutils.TanglefootLesserID}, s.formulaIDs(saved))
	s.Require().NotNil(saved.PreviousLevel)
	s.Equal(5, *saved.PreviousLevel)
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_LevelNotIncreased() {
	a := builders.NewActor(testActorID).WithLevel(5).WithWatermark(5).
		WithFormulas(testutils.TanglefootLesserID).Build()
	s.expectActor(a)
	saved := s.expectSave()

	output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
		ActorID:  testActorID,
		NewLevel: 3,
	})

	s.Require().NoError(err)
	s.Equal(formula.OutcomeNoOp, output.Outcome)
	s.Equal(5, output.PreviousLevel)
	s.Equal([]string{testutils.TanglefootLesserID}, s.formulaIDs(saved))
	s.Equal(3, *saved.PreviousLevel)
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_PreviousLevelDefaults() {
	s.Run("explicit previous level overrides the watermark", func() {
		a := builders.NewActor(testActorID).WithWatermark(4).
			WithFormulas(testutils.TanglefootLesserID).Build()
		s.expectActor(a)
		s.expectIndex()
		s.expectSave()

		previous := 1
		output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
			ActorID:       testActorID,
			NewLevel:      5,
			PreviousLevel: &previous,
		})

		s.Require().NoError(err)
		s.Equal(1, output.PreviousLevel)
		s.Equal([]string{testutils.TanglefootGreaterID}, s.refIDs(output.Granted))
	})

	s.Run("no watermark uses one level below", func() {
		a := builders.NewActor(testActorID).WithFormulas(testutils.TanglefootLesserID).Build()
		s.expectActor(a)
		s.expectIndex()
		s.expectSave()

		output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
			ActorID:  testActorID,
			NewLevel: 4,
		})

		s.Require().NoError(err)
		s.Equal(3, output.PreviousLevel)
		s.Equal([]string{testutils.TanglefootGreaterID}, s.refIDs(output.Granted))
	})
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_AskEachPartialAcceptance() {
	a := builders.NewActor(testActorID).WithWatermark(1).
		WithFormulas(testutils.TanglefootLesserID, testutils.ElixirOfLifeMinorID).Build()
	s.expectActor(a)
	s.expectIndex()
	saved := s.expectSave()

	confirmer := formulamock.NewMockConfirmer(s.ctrl)
	confirmer.EXPECT().
		ConfirmGrant(s.ctx, a, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *alchemy.Actor, ref alchemy.RecordRef) (bool, error) {
			return ref.ID == testutils.ElixirOfLifeLesserID, nil
		}).
		Times(2)

	output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
		ActorID:  testActorID,
		NewLevel: 5,
		Settings: &alchemy.GrantSettings{
			Mode:            alchemy.GrantModeAskEach,
			PruneLowerTiers: true,
			RequiredRarity:  alchemy.RarityCommon,
		},
		Confirmer: confirmer,
	})

	s.Require().NoError(err)
	s.Equal(formula.OutcomeGrantedAndRevoked, output.Outcome)
	s.Equal([]string{testutils.ElixirOfLifeLesserID}, s.refIDs(output.Granted))
	s.Equal([]string{testutils.TanglefootGreaterID}, s.refIDs(output.Declined))
	s.Equal([]string{testutils.ElixirOfLifeMinorID}, s.refIDs(output.Revoked))
	s.Equal([]string{testutils.TanglefootLesserID, testutils.ElixirOfLifeLesserID}, s.formulaIDs(saved))
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_AskAllDeclined() {
	a := builders.NewActor(testActorID).WithWatermark(1).
		WithFormulas(testutils.TanglefootLesserID, testutils.ElixirOfLifeMinorID).Build()
	s.expectActor(a)
	s.expectIndex()
	saved := s.expectSave()

	confirmer := formulamock.NewMockConfirmer(s.ctrl)
	confirmer.EXPECT().
		ConfirmAll(s.ctx, a, gomock.Len(2)).
		Return(false, nil)

	output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
		ActorID:  testActorID,
		NewLevel: 5,
		Settings: &alchemy.GrantSettings{
			Mode:            alchemy.GrantModeAskAll,
			PruneLowerTiers: true,
			RequiredRarity:  alchemy.RarityCommon,
		},
		Confirmer: confirmer,
	})

	s.Require().NoError(err)
	s.Equal(formula.OutcomeNoOp, output.Outcome)
	s.Empty(output.Granted)
	s.Empty(output.Revoked)
	s.Len(output.Declined, 2)
	s.Equal([]string{testutils.TanglefootLesserID, testutils.ElixirOfLifeMinorID}, s.formulaIDs(saved))
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_ConfirmerErrorDeclines() {
	a := builders.NewActor(testActorID).WithWatermark(1).
		WithFormulas(testutils.TanglefootLesserID).Build()
	s.expectActor(a)
	s.expectIndex()
	s.expectSave()

	confirmer := formulamock.NewMockConfirmer(s.ctrl)
	confirmer.EXPECT().
		ConfirmGrant(s.ctx, a, gomock.Any()).
		Return(true, errors.Unavailable("player disconnected"))

	output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
		ActorID:   testActorID,
		NewLevel:  5,
		Settings:  &alchemy.GrantSettings{Mode: alchemy.GrantModeAskEach},
		Confirmer: confirmer,
	})

	s.Require().NoError(err)
	s.Equal(formula.OutcomeNoOp, output.Outcome)
	s.Equal([]string{testutils.TanglefootGreaterID}, s.refIDs(output.Declined))
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_ApprovalConfirmer() {
	a := builders.NewActor(testActorID).WithWatermark(1).
		WithFormulas(testutils.TanglefootLesserID, testutils.ElixirOfLifeMinorID).Build()
	s.expectActor(a)
	s.expectIndex()
	s.expectSave()

	output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
		ActorID:   testActorID,
		NewLevel:  5,
		Settings:  &alchemy.GrantSettings{Mode: alchemy.GrantModeAskEach},
		Confirmer: formula.NewApprovalConfirmer(testutils.TanglefootGreaterID),
	})

	s.Require().NoError(err)
	s.Equal(formula.OutcomeGranted, output.Outcome)
	s.Equal([]string{testutils.TanglefootGreaterID}, s.refIDs(output.Granted))
	s.Equal([]string{testutils.ElixirOfLifeLesserID}, s.refIDs(output.Declined))
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_AskModeRequiresConfirmer() {
	output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
		ActorID:  testActorID,
		NewLevel: 5,
		Settings: &alchemy.GrantSettings{Mode: alchemy.GrantModeAskAll},
	})

	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_RequiredRarity() {
	s.Run("common pool skips the uncommon tier", func() {
		a := builders.NewActor(testActorID).WithWatermark(1).
			WithFormulas(testutils.AlchemistsFireID).Build()
		s.expectActor(a)
		s.expectIndex()
		s.expectSave()

		output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
			ActorID:  testActorID,
			NewLevel: 3,
		})

		s.Require().NoError(err)
		s.Equal(formula.OutcomeNoOp, output.Outcome)
	})

	s.Run("uncommon pool grants the uncommon tier", func() {
		a := builders.NewActor(testActorID).WithWatermark(1).
			WithFormulas(testutils.AlchemistsFireID).Build()
		s.expectActor(a)
		s.expectIndex()
		s.expectSave()

		output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
			ActorID:  testActorID,
			NewLevel: 3,
			Settings: &alchemy.GrantSettings{
				Mode:           alchemy.GrantModeAuto,
				RequiredRarity: alchemy.RarityUncommon,
			},
		})

		s.Require().NoError(err)
		s.Equal([]string{testutils.AlchemistsFireModID}, s.refIDs(output.Granted))
	})

	s.Run("mixed case override matches stored rarity", func() {
		a := builders.NewActor(testActorID).WithWatermark(1).
			WithFormulas(testutils.AlchemistsFireID).Build()
		s.expectActor(a)
		s.expectIndex()
		s.expectSave()

		output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
			ActorID:  testActorID,
			NewLevel: 3,
			Settings: &alchemy.GrantSettings{
				Mode:           alchemy.GrantModeAuto,
				RequiredRarity: "Uncommon",
			},
		})

		s.Require().NoError(err)
		s.Equal(formula.OutcomeGranted, output.Outcome)
		s.Equal([]string{testutils.AlchemistsFireModID}, s.refIDs(output.Granted))
	})

	s.Run("mixed case service default matches stored rarity", func() {
		svc, err := formula.NewOrchestrator(&formula.Config{
			ActorRepo: s.mockActorRepo,
			IndexRepo: s.mockIndexRepo,
			Catalogs:  s.registry,
			Clock:     s.mockClock,
			Settings: alchemy.GrantSettings{
				Mode:           alchemy.GrantModeAuto,
				RequiredRarity: "UNCOMMON",
			},
		})
		s.Require().NoError(err)

		a := builders.NewActor(testActorID).WithWatermark(1).
			WithFormulas(testutils.AlchemistsFireID).Build()
		s.expectActor(a)
		s.expectIndex()
		s.expectSave()

		output, err := svc.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
			ActorID:  testActorID,
			NewLevel: 3,
		})

		s.Require().NoError(err)
		s.Equal([]string{testutils.AlchemistsFireModID}, s.refIDs(output.Granted))
	})
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_MissingIndexUsesCatalogs() {
	a := builders.NewActor(testActorID).WithWatermark(1).
		WithFormulas(testutils.TanglefootLesserID).Build()
	s.expectActor(a)
	s.mockIndexRepo.EXPECT().
		Get(s.ctx, alchemicalindex.GetInput{}).
		Return(nil, errors.NotFound("alchemical index not found"))
	s.expectSave()

	output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
		ActorID:  testActorID,
		NewLevel: 10,
	})

	s.Require().NoError(err)
	s.Equal([]string{testutils.TanglefootMajorID}, s.refIDs(output.Granted))
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_SkipsUnresolvableKnownFormula() {
	a := builders.NewActor(testActorID).WithWatermark(1).
		WithFormulas("homebrew-formula", testutils.TanglefootLesserID).Build()
	s.expectActor(a)
	s.expectIndex()
	saved := s.expectSave()

	output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
		ActorID:  testActorID,
		NewLevel: 5,
	})

	s.Require().NoError(err)
	s.Equal([]string{testutils.TanglefootGreaterID}, s.refIDs(output.Granted))
	s.Equal([]string{"homebrew-formula", testutils.TanglefootLesserID, testutils.TanglefootGreaterID},
		s.formulaIDs(saved))
}

func (s *OrchestratorTestSuite) TestOnLevelChanged_Errors() {
	s.Run("missing actor ID", func() {
		_, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{NewLevel: 2})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("negative level", func() {
		_, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
			ActorID:  testActorID,
			NewLevel: -1,
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("actor not found", func() {
		s.mockActorRepo.EXPECT().
			Get(s.ctx, actor.GetInput{ID: testActorID}).
			Return(nil, errors.NotFound("actor not found"))

		_, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
			ActorID:  testActorID,
			NewLevel: 2,
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("save failure is returned", func() {
		a := builders.NewActor(testActorID).WithWatermark(1).
			WithFormulas(testutils.TanglefootLesserID).Build()
		s.expectActor(a)
		s.expectIndex()
		s.mockActorRepo.EXPECT().
			Save(s.ctx, gomock.Any()).
			Return(nil, errors.Internal("failed to save actor"))

		_, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
			ActorID:  testActorID,
			NewLevel: 5,
		})
		s.True(errors.IsInternal(err))
	})
}

func (s *OrchestratorTestSuite) TestResolveGrants() {
	output, err := s.orchestrator.ResolveGrants(s.ctx, &formula.ResolveGrantsInput{
		Known: []alchemy.RecordRef{
			builders.NewRecord(testutils.TanglefootLesserID, "Tanglefoot Bag (Lesser)").WithLevel(1).Ref(),
		},
		Candidates: []alchemy.RecordRef{
			builders.NewRecord(testutils.TanglefootGreaterID, "Tanglefoot Bag (Greater)").WithLevel(4).Ref(),
		},
		PreviousLevel: 1,
		NewLevel:      5,
	})

	s.Require().NoError(err)
	s.Equal([]string{testutils.TanglefootGreaterID}, s.refIDs(output.ToGrant))
}

func (s *OrchestratorTestSuite) TestSaveActor_CreatesNewActor() {
	s.mockActorRepo.EXPECT().
		Get(s.ctx, actor.GetInput{ID: testActorID}).
		Return(nil, errors.NotFound("actor not found"))
	saved := s.expectSave()

	output, err := s.orchestrator.SaveActor(s.ctx, &formula.SaveActorInput{
		ActorID:    testActorID,
		Name:       "Quilla",
		Level:      1,
		FormulaIDs: []string{testutils.TanglefootLesserID, testutils.AlchemistsFireID, testutils.TanglefootLesserID},
	})

	s.Require().NoError(err)
	s.True(output.Created)
	s.Equal("Quilla", saved.Name)
	s.Equal(1, saved.Level)
	s.Require().NotNil(saved.PreviousLevel)
	s.Equal(1, *saved.PreviousLevel)
	s.Equal([]string{testutils.TanglefootLesserID, testutils.AlchemistsFireID}, s.formulaIDs(saved))
	s.Equal(alchemy.Acquisition{Source: alchemy.AcquisitionManual, Level: 1, AcquiredAt: s.now},
		saved.Formulas[0].Acquisition)
}

func (s *OrchestratorTestSuite) TestSaveActor_ReplacesFormulaBook() {
	stored := builders.NewActor(testActorID).WithLevel(3).WithWatermark(3).
		WithFormulas(testutils.TanglefootLesserID, testutils.ElixirOfLifeMinorID).Build()
	s.expectActor(stored)
	saved := s.expectSave()

	output, err := s.orchestrator.SaveActor(s.ctx, &formula.SaveActorInput{
		ActorID:    testActorID,
		Level:      4,
		FormulaIDs: []string{testutils.TanglefootLesserID, testutils.AlchemistsFireID},
	})

	s.Require().NoError(err)
	s.False(output.Created)
	s.Equal("Test Alchemist", saved.Name)
	s.Equal(4, *saved.PreviousLevel)
	s.Equal([]string{testutils.TanglefootLesserID, testutils.AlchemistsFireID}, s.formulaIDs(saved))
	s.Equal("creation", saved.Formulas[0].Acquisition.Source)
	s.Equal(alchemy.AcquisitionManual, saved.Formulas[1].Acquisition.Source)
	s.Equal(4, saved.Formulas[1].Acquisition.Level)
}

func (s *OrchestratorTestSuite) TestSaveActor_ThenLevelUp() {
	var stored *alchemy.Actor
	s.mockActorRepo.EXPECT().
		Get(s.ctx, actor.GetInput{ID: testActorID}).
		Return(nil, errors.NotFound("actor not found"))
	s.mockActorRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input actor.SaveInput) (*actor.SaveOutput, error) {
			stored = input.Actor
			return &actor.SaveOutput{Actor: input.Actor}, nil
		})

	_, err := s.orchestrator.SaveActor(s.ctx, &formula.SaveActorInput{
		ActorID:    testActorID,
		Level:      1,
		FormulaIDs: []string{testutils.TanglefootLesserID},
	})
	s.Require().NoError(err)

	s.expectActor(stored)
	s.expectIndex()
	s.expectSave()

	output, err := s.orchestrator.OnLevelChanged(s.ctx, &formula.LevelChangedInput{
		ActorID:  testActorID,
		NewLevel: 5,
	})

	s.Require().NoError(err)
	s.Equal(1, output.PreviousLevel)
	s.Equal([]string{testutils.TanglefootGreaterID}, s.refIDs(output.Granted))
}

func (s *OrchestratorTestSuite) TestSaveActor_Errors() {
	testCases := []struct {
		name  string
		input *formula.SaveActorInput
	}{
		{name: "nil input", input: nil},
		{name: "missing actor ID", input: &formula.SaveActorInput{Level: 1}},
		{name: "negative level", input: &formula.SaveActorInput{ActorID: testActorID, Level: -1}},
		{name: "blank formula ID", input: &formula.SaveActorInput{ActorID: testActorID, FormulaIDs: []string{" "}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.SaveActor(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}

	s.Run("storage read failure", func() {
		s.mockActorRepo.EXPECT().
			Get(s.ctx, actor.GetInput{ID: testActorID}).
			Return(nil, errors.Unavailable("redis down"))

		_, err := s.orchestrator.SaveActor(s.ctx, &formula.SaveActorInput{ActorID: testActorID})
		s.True(errors.IsUnavailable(err))
	})
}

func (s *OrchestratorTestSuite) TestGetActor() {
	stored := builders.NewActor(testActorID).WithFormulas(testutils.TanglefootLesserID).Build()
	s.expectActor(stored)

	output, err := s.orchestrator.GetActor(s.ctx, &formula.GetActorInput{ActorID: testActorID})
	s.Require().NoError(err)
	s.Equal(stored, output.Actor)

	_, err = s.orchestrator.GetActor(s.ctx, &formula.GetActorInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestNewOrchestrator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testCases := []struct {
		name    string
		cfg     *formula.Config
		wantErr bool
	}{
		{name: "nil config", cfg: nil, wantErr: true},
		{name: "missing dependencies", cfg: &formula.Config{}, wantErr: true},
		{
			name: "invalid settings",
			cfg: &formula.Config{
				ActorRepo: actormock.NewMockRepository(ctrl),
				IndexRepo: alchemicalindexmock.NewMockRepository(ctrl),
				Catalogs:  catalog.NewRegistry(),
				Settings:  alchemy.GrantSettings{Mode: "sometimes"},
			},
			wantErr: true,
		},
		{
			name: "zero settings use defaults",
			cfg: &formula.Config{
				ActorRepo: actormock.NewMockRepository(ctrl),
				IndexRepo: alchemicalindexmock.NewMockRepository(ctrl),
				Catalogs:  catalog.NewRegistry(),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := formula.NewOrchestrator(tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, svc)
		})
	}
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
