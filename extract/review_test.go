package extract_test

import (
	"testing"
	"time"

	"github.com/fwojciec/tourpkg"
	"github.com/fwojciec/tourpkg/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviews(t *testing.T) {
	t.Parallel()

	t.Run("maps scores and registration time", func(t *testing.T) {
		t.Parallel()

		review := `{"data":{"EvalList":[{"Title":"좋아요","Item2":"5","Item4":4,"Item5":"3","Item6":"2","RegDT":"2024-02-15 오전 9:04:05"}]}}`

		got, err := extract.Reviews(review)

		require.NoError(t, err)
		assert.Equal(t, []tourpkg.Review{{
			Content:          "좋아요",
			ProductScore:     5,
			ScheduleScore:    4,
			GuideScore:       3,
			AppointmentScore: 2,
			CreatedAt:        time.Date(2024, time.February, 15, 9, 4, 5, 0, time.UTC),
		}}, got)
	})

	t.Run("empty list yields no reviews", func(t *testing.T) {
		t.Parallel()

		got, err := extract.Reviews(`{"data":{"EvalList":[]}}`)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("keeps list order", func(t *testing.T) {
		t.Parallel()

		review := `{"data":{"EvalList":[{"Title":"가족여행 최고","Item2":"5","Item4":"4","Item5":"5","Item6":"3","RegDT":"2024-02-15 오후 3:04:05"},{"Title":"무난","Item2":"3","Item4":"3","Item5":"3","Item6":"3","RegDT":"2024-01-02 오전 12:30:00"}]}}`

		got, err := extract.Reviews(review)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "가족여행 최고", got[0].Content)
		assert.Equal(t, "무난", got[1].Content)
		assert.Equal(t, time.Date(2024, time.January, 2, 0, 30, 0, 0, time.UTC), got[1].CreatedAt)
	})

	t.Run("missing list is a parse error", func(t *testing.T) {
		t.Parallel()

		_, err := extract.Reviews(`{"data":{}}`)

		assert.Equal(t, tourpkg.EINVALID, tourpkg.ErrorCode(err))
	})

	t.Run("missing score is a parse error", func(t *testing.T) {
		t.Parallel()

		_, err := extract.Reviews(`{"data":{"EvalList":[{"Title":"x","Item2":"5","RegDT":"2024-02-15 오후 3:04:05"}]}}`)

		assert.Equal(t, tourpkg.EINVALID, tourpkg.ErrorCode(err))
	})
}

func TestParseReviewTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-02-15 오후 3:04:05", time.Date(2024, time.February, 15, 15, 4, 5, 0, time.UTC)},
		{"2024-02-15 오전 12:00:00", time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-02-15 오후 12:30:00", time.Date(2024, time.February, 15, 12, 30, 0, 0, time.UTC)},
		{"2024-02-15 오전 11:59:59", time.Date(2024, time.February, 15, 11, 59, 59, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := extract.ParseReviewTime(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects other layouts", func(t *testing.T) {
		t.Parallel()

		_, err := extract.ParseReviewTime("2024-02-15T15:04:05Z")

		assert.Equal(t, tourpkg.EINVALID, tourpkg.ErrorCode(err))
	})

	t.Run("rejects missing meridiem", func(t *testing.T) {
		t.Parallel()

		_, err := extract.ParseReviewTime("2024-02-15 15:04:05")

		assert.Equal(t, tourpkg.EINVALID, tourpkg.ErrorCode(err))
	})
}
