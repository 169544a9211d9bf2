package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/domain/jobModel"
	"github.com/akolanti/lexgate/internal/metrics"
)

func executeJob(job jobModel.Job) {
	start := time.Now()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, config.ConversionJobTimeout)
	defer cancel()
	log := logger.Trace(ctx).With("jobId", job.Id)
	log.Debug("Processing job", "document", job.JobPayload.DocumentId)

	job.Status = jobModel.JobStatusRunning
	saveJobState(ctx, job)

	job = _converter.ProcessConversion(ctx, job)
	job.EndTime = time.Now()
	saveJobState(ctx, job)

	metrics.CaptureConversionMetrics(string(job.JobPayload.DocType), string(job.Status), time.Since(start))
	log.Info("Job finished", "status", job.Status, "step", job.CurrentStep)
}

func removeWorker(reason string) {
	workerWaitGroup.Done()
	metrics.DecrementActiveWorkerCount()
	logger.Info("Removed worker", "reason", reason, "workerCount", atomic.LoadInt64(&currentWorkerCount))
}

// saveJobState uses a detached context so a timed out conversion still records its outcome.
func saveJobState(ctx context.Context, job jobModel.Job) {
	if err := _jobService.JobStore.SaveJob(context.WithoutCancel(ctx), job); err != nil {
		logger.Trace(ctx).Error("Failed to update job status", "jobId", job.Id, "err", err)
	}
}
