package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/pinledger/internal/usecase"
	"github.com/iho/pinledger/internal/usecase/mocks"
)

func TestLedgerUseCase_CheckConsistency(t *testing.T) {
	dbErr := errors.New("store down")

	tests := []struct {
		name        string
		setup       func(repo *mocks.MockLedgerRepository)
		want        bool
		expectedErr error
	}{
		{
			name: "balanced ledger",
			setup: func(repo *mocks.MockLedgerRepository) {
				repo.EXPECT().CheckConsistency(gomock.Any()).Return(decimal.NewFromInt(9500), decimal.NewFromInt(9500), nil)
				repo.EXPECT().CountNegative(gomock.Any()).Return(0, nil)
			},
			want: true,
		},
		{
			name: "repo error surfaces",
			setup: func(repo *mocks.MockLedgerRepository) {
				repo.EXPECT().CheckConsistency(gomock.Any()).Return(decimal.Zero, decimal.Zero, dbErr)
			},
			expectedErr: dbErr,
		},
		{
			name: "sum differs from tracked total",
			setup: func(repo *mocks.MockLedgerRepository) {
				repo.EXPECT().CheckConsistency(gomock.Any()).Return(decimal.NewFromInt(10), decimal.NewFromInt(11), nil)
			},
			expectedErr: usecase.ErrInconsistentLedger,
		},
		{
			name: "negative balance",
			setup: func(repo *mocks.MockLedgerRepository) {
				repo.EXPECT().CheckConsistency(gomock.Any()).Return(decimal.NewFromInt(10), decimal.NewFromInt(10), nil)
				repo.EXPECT().CountNegative(gomock.Any()).Return(1, nil)
			},
			expectedErr: usecase.ErrInconsistentLedger,
		},
		{
			name: "count error surfaces",
			setup: func(repo *mocks.MockLedgerRepository) {
				repo.EXPECT().CheckConsistency(gomock.Any()).Return(decimal.NewFromInt(10), decimal.NewFromInt(10), nil)
				repo.EXPECT().CountNegative(gomock.Any()).Return(0, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockLedgerRepository(ctrl)
			tt.setup(repo)

			got, err := usecase.NewLedgerUseCase(repo).CheckConsistency(context.Background())

			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if tt.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}
