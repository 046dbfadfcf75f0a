package orchestrator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"k8s.io/klog/v2"
)

// -----------------------------
// Job 定义
// -----------------------------
type Job struct {
	SubmissionID uint
	EnqueuedAt   time.Time
	Timeout      time.Duration
}

// -----------------------------
// Exporter 接口
// -----------------------------
// 导出是一次性操作，引擎内不做重试：失败直接上抛，由调用方重新发起
type Exporter interface {
	ExportSubmission(ctx context.Context, submissionID uint) error
}

// -----------------------------
// Orchestrator
// -----------------------------
type Orchestrator struct {
	jobQueue chan Job

	pool *ants.Pool

	exporter Exporter

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once

	inflight sync.WaitGroup
}

// -----------------------------
// 错误定义
// -----------------------------
var (
	ErrOrchestratorStopped = errors.New("orchestrator is stopped")
	ErrQueueFull           = errors.New("job queue is full")
)

// NewExportJob 创建一个新的导出任务对象
func NewExportJob(submissionID uint) Job {
	return Job{
		SubmissionID: submissionID,
		EnqueuedAt:   time.Now(),
		Timeout:      2 * time.Minute,
	}
}

// -----------------------------
// 构造函数
// -----------------------------
func NewOrchestrator(maxWorkers int, exporter Exporter) (*Orchestrator, error) {
	ctx, cancel := context.WithCancel(context.Background())

	pool, err := ants.NewPool(maxWorkers,
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(5*time.Minute),
	)
	if err != nil {
		cancel()
		klog.Errorf("ants pool initialization failed: %v", err)
		return nil, err
	}

	return &Orchestrator{
		jobQueue: make(chan Job, 64),
		pool:     pool,
		exporter: exporter,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// -----------------------------
// 启动
// -----------------------------
func (o *Orchestrator) Start() {
	go o.dispatchLoop()
}

// -----------------------------
// 停止
// -----------------------------
func (o *Orchestrator) Stop() {
	o.stopOnce.Do(func() {
		klog.V(6).Infof("Orchestrator stopping...")
		o.cancel()
		o.inflight.Wait()
		o.pool.Release()
	})
}

// Enqueue 提交导出任务
func (o *Orchestrator) Enqueue(job Job) error {
	select {
	case <-o.ctx.Done():
		return ErrOrchestratorStopped
	default:
	}

	select {
	case o.jobQueue <- job:
		klog.V(6).Infof("导出任务已入队: submissionID=%d", job.SubmissionID)
		return nil
	default:
		return ErrQueueFull
	}
}

// Pending 队列中等待的任务数
func (o *Orchestrator) Pending() int {
	return len(o.jobQueue)
}

// Running 正在执行的任务数
func (o *Orchestrator) Running() int {
	return o.pool.Running()
}

func (o *Orchestrator) dispatchLoop() {
	for {
		select {
		case <-o.ctx.Done():
			return
		case job := <-o.jobQueue:
			o.inflight.Add(1)
			j := job
			if err := o.pool.Submit(func() {
				defer o.inflight.Done()
				o.runJob(j)
			}); err != nil {
				o.inflight.Done()
				klog.Errorf("提交导出任务到工作池失败: submissionID=%d, error=%v", j.SubmissionID, err)
			}
		}
	}
}

func (o *Orchestrator) runJob(job Job) {
	ctx, cancel := context.WithTimeout(o.ctx, job.Timeout)
	defer cancel()

	if err := o.exporter.ExportSubmission(ctx, job.SubmissionID); err != nil {
		// 不重试：失败记录后由用户重新发起导出
		klog.Errorf("后台导出失败: submissionID=%d, error=%v", job.SubmissionID, err)
		return
	}
	klog.V(6).Infof("后台导出完成: submissionID=%d, 排队耗时=%s",
		job.SubmissionID, time.Since(job.EnqueuedAt))
}
