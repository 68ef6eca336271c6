package command

import (
	"errors"
	"testing"

	"github.com/jbeshir/candidate-job-matching/internal/datasources/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelDrainChain_Execute(t *testing.T) {
	cases := []struct {
		name       string
		chainID    string
		cancelErr  error
		wantCancel string
		wantErrIs  error
		wantErr    bool
	}{
		{name: "cancels_chain", chainID: "chain1", wantCancel: "chain1"},
		{name: "trims_whitespace", chainID: " chain1\n", wantCancel: "chain1"},
		{name: "empty_rejected", chainID: "  ", wantErr: true, wantErrIs: ErrInvalidChainID},
		{name: "store_failure", chainID: "chain1", wantCancel: "chain1", cancelErr: errors.New("read only"), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			canceller := mocks.NewMockDrainChainCanceller(t)
			if tc.wantCancel != "" {
				canceller.EXPECT().CancelDrainChain(mock.Anything, tc.wantCancel).Return(tc.cancelErr)
			}

			_, err := NewCancelDrainChain(canceller).Execute(testCtx(), CancelDrainChainRequest{ChainID: tc.chainID})

			if tc.wantErr {
				require.Error(t, err)
				if tc.wantErrIs != nil {
					assert.ErrorIs(t, err, tc.wantErrIs)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}
