package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/howto"
	"github.com/fwojciec/howto/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_HowTo(t *testing.T) {
	t.Parallel()

	t.Run("delegates to HowToFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		s := &mock.Service{
			HowToFn: func(_ context.Context, query string) (*howto.Document, error) {
				calledWith = query
				return &howto.Document{Title: "Tie a Tie"}, nil
			},
		}

		doc, err := s.HowTo(context.Background(), "tie a tie")

		require.NoError(t, err)
		assert.Equal(t, "tie a tie", calledWith)
		assert.Equal(t, "Tie a Tie", doc.Title)
	})

	t.Run("returns error from HowToFn", func(t *testing.T) {
		t.Parallel()

		s := &mock.Service{
			HowToFn: func(context.Context, string) (*howto.Document, error) {
				return nil, howto.Errorf(howto.ENOTFOUND, "no article")
			},
		}

		_, err := s.HowTo(context.Background(), "x")

		assert.Equal(t, howto.ENOTFOUND, howto.ErrorCode(err))
	})
}
