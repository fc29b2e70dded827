package metrics

import (
	"testing"

	apperrors "helpdesk-backend/lib/utils/app-errors"
	"helpdesk-backend/models"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run(`transition result labels check`, func(t *testing.T) {
		observe := func(err error) {
			ObserveTransition("testOperation", &err)
		}
		observe(nil)
		observe(apperrors.InvalidState("статус изменен"))
		observe(errors.Wrap(apperrors.Forbidden("нет доступа"), "обертка"))
		observe(errors.New("сбой БД"))

		require.EqualValues(t, 1, testutil.ToFloat64(hiringTransitions.WithLabelValues("testOperation", "success")))
		require.EqualValues(t, 1, testutil.ToFloat64(hiringTransitions.WithLabelValues("testOperation", "INVALID_STATE")))
		require.EqualValues(t, 1, testutil.ToFloat64(hiringTransitions.WithLabelValues("testOperation", "FORBIDDEN")))
		require.EqualValues(t, 1, testutil.ToFloat64(hiringTransitions.WithLabelValues("testOperation", "UNEXPECTED")))
	})

	t.Run(`pipeline counts check`, func(t *testing.T) {
		SetPipelineCounts(map[models.RequestStatus]int64{
			models.RSJobPosted:   3,
			models.RSLoaApproved: 0,
		})
		require.EqualValues(t, 3, testutil.ToFloat64(hiringRequests.WithLabelValues(string(models.RSJobPosted))))
		require.EqualValues(t, 0, testutil.ToFloat64(hiringRequests.WithLabelValues(string(models.RSLoaApproved))))
	})
}
