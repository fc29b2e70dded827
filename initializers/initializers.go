package initializers

import (
	"context"
	"time"

	"helpdesk-backend/config"
	"helpdesk-backend/fiberlog"
	pdfexport "helpdesk-backend/lib/export/pdf"
	xlsexport "helpdesk-backend/lib/export/xls"
	hiringhandler "helpdesk-backend/lib/hiring"
	pipelinestatsworker "helpdesk-backend/lib/pipeline-stats"
	"helpdesk-backend/lib/rbac"
	requesthandler "helpdesk-backend/lib/request"
	requestactivityhandler "helpdesk-backend/lib/request-activity"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	requestactivityhandler.NewHandler()
	requesthandler.NewHandler()
	hiringhandler.NewHandler()
	rbac.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача обновления метрик по статусам заявок
	pipelinestatsworker.StartWorker(ctx, time.Duration(config.Conf.Workers.PipelineStatsPeriodSec)*time.Second)
}
