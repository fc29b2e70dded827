package pipelinestatsworker

import (
	"context"
	"time"

	"helpdesk-backend/db"
	"helpdesk-backend/lib/metrics"
	requeststore "helpdesk-backend/lib/request/store"
	baseworker "helpdesk-backend/lib/utils/base-worker"
	"helpdesk-backend/models"

	"gorm.io/gorm"
)

const defaultPeriod = time.Minute

// StartWorker периодически обновляет количество заявок по статусам процесса найма
func StartWorker(ctx context.Context, period time.Duration) {
	i := newInstance(db.DB, period)
	go i.Run(ctx, i.handle)
}

func newInstance(DB *gorm.DB, period time.Duration) *impl {
	if period <= 0 {
		period = defaultPeriod
	}
	return &impl{
		BaseImpl: *baseworker.NewInstance("PipelineStatsWorker", 5*time.Second, period),
		store:    requeststore.NewInstance(DB),
	}
}

type impl struct {
	baseworker.BaseImpl
	store requeststore.Provider
}

func (i impl) handle(ctx context.Context) {
	counts, err := i.store.CountByStatus(models.HiringWorkflowStatuses())
	if err != nil {
		i.GetLogger().WithError(err).Error("ошибка подсчета заявок по статусам")
		return
	}
	metrics.SetPipelineCounts(counts)
}
