package usecase

import (
	"context"
	"fmt"

	"github.com/loomos/loomshell/internal/domain"
)

// RecordLaunchInput contains the parameters for recording a launch.
type RecordLaunchInput struct {
	AppID string
}

// RecordLaunchOutput contains the result of recording a launch.
type RecordLaunchOutput struct{}

// RecordLaunch stores one launch in the usage statistics.
type RecordLaunch struct {
	usage domain.UsageRepository
	clock domain.Clock
}

// NewRecordLaunch creates a new RecordLaunch use case.
func NewRecordLaunch(usage domain.UsageRepository, clock domain.Clock) *RecordLaunch {
	return &RecordLaunch{
		usage: usage,
		clock: clock,
	}
}

// Execute records the launch at the current time.
func (uc *RecordLaunch) Execute(_ context.Context, in RecordLaunchInput) (*RecordLaunchOutput, error) {
	if in.AppID == "" {
		return nil, domain.ErrAppNotFound
	}
	if err := uc.usage.Record(in.AppID, uc.clock.Now()); err != nil {
		return nil, fmt.Errorf("record usage: %w", err)
	}
	return &RecordLaunchOutput{}, nil
}
