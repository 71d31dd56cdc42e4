package index

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
	clockmock "github.com/KirkDiggler/rpg-alchemy/internal/pkg/clock/mock"
)

func TestYielder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mockClock := clockmock.NewMockClock(ctrl)
	gomock.InOrder(
		mockClock.EXPECT().Now().Return(start),
		// under the interval
		mockClock.EXPECT().Now().Return(start.Add(5*time.Millisecond)),
		// past the interval, then the reset read
		mockClock.EXPECT().Now().Return(start.Add(20*time.Millisecond)),
		mockClock.EXPECT().Now().Return(start.Add(20*time.Millisecond)),
	)

	y := newYielder(mockClock, DefaultYieldInterval)
	ctx := context.Background()

	require.NoError(t, y.yield(ctx))
	assert.Equal(t, 0, y.yields)

	require.NoError(t, y.yield(ctx))
	assert.Equal(t, 1, y.yields)
}

func TestYielder_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClock := clockmock.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(time.Time{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newYielder(mockClock, DefaultYieldInterval).yield(ctx)
	assert.True(t, errors.IsCanceled(err))
}
