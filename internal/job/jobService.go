package job

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/domain/documentModel"
	"github.com/akolanti/lexgate/internal/domain/jobModel"
	"github.com/akolanti/lexgate/internal/metrics"
	"github.com/akolanti/lexgate/pkg/logger_i"
)

var logger = logger_i.NewLogger("JobService")

type Service struct {
	JobChannel        chan jobModel.Job
	RequestCount      int64
	DispatcherChannel chan bool
	JobStore          jobModel.JobStore
	DocumentStore     documentModel.DocumentStore
}

type ServiceConfig struct {
	JobChannel        chan jobModel.Job
	RequestCount      int64
	DispatcherChannel chan bool
	JobStore          jobModel.JobStore
	DocumentStore     documentModel.DocumentStore
}

func InitJobService(cfg ServiceConfig) *Service {
	return &Service{
		JobChannel:        cfg.JobChannel,
		RequestCount:      cfg.RequestCount,
		DispatcherChannel: cfg.DispatcherChannel,
		JobStore:          cfg.JobStore,
		DocumentStore:     cfg.DocumentStore,
	}
}

// EnqueueConversion records a QUEUED job and hands it to the worker pool.
// The send blocks when the buffer is full, which throttles uploads.
func (s *Service) EnqueueConversion(ctx context.Context, id string, payload jobModel.JobPayload) (jobModel.Job, error) {
	log := logger.Trace(ctx).With("jobId", id)
	trace, _ := ctx.Value(config.TRACE_ID_KEY).(string)

	newJob := jobModel.Job{
		Id:          id,
		TraceId:     trace,
		JobType:     jobModel.JobTypeConvert,
		JobPayload:  payload,
		CreatedTime: time.Now(),
		Status:      jobModel.JobStatusQueued,
		CurrentStep: jobModel.ConvertInit,
	}
	if err := s.JobStore.SaveJob(ctx, newJob); err != nil {
		return newJob, fmt.Errorf("save queued job: %w", err)
	}

	select {
	case s.JobChannel <- newJob:
	case <-ctx.Done():
		s.JobStore.DeleteJob(context.WithoutCancel(ctx), id)
		return newJob, ctx.Err()
	}
	metrics.IncrementJobsInQueue()
	log.Info("Queued conversion job", "document", payload.DocumentId)

	//every Nth job or a backlog asks the dispatcher for another worker, idle ones retire on their own
	count := atomic.AddInt64(&s.RequestCount, 1)
	if count%config.RequestsPerNewWorkerCount == 0 || len(s.JobChannel) > 1 {
		metrics.StartDispatcherSignalCount()
		select {
		case s.DispatcherChannel <- true:
		default:
			log.Debug("Dispatcher busy, skipping worker signal")
		}
	}
	return newJob, nil
}
