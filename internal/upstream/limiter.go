package upstream

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task 是一次可被限流调度的次要抓取。
type Task func(ctx context.Context) error

// RunLimited 以最多 limit 个并发执行 tasks，等待全部结束后按下标返回每个任务的错误。
// 单个任务失败不会取消或阻塞其余任务；limit < 1 时按 1 处理。
func RunLimited(ctx context.Context, limit int, tasks []Task) []error {
	errs := make([]error, len(tasks))
	if len(tasks) == 0 {
		return errs
	}
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, task := range tasks {
		if task == nil {
			continue
		}
		g.Go(func() error {
			errs[i] = task(ctx)
			return nil
		})
	}
	_ = g.Wait()
	return errs
}

// Map 对 in 中每个元素并发执行 fn（最多 limit 个同时运行），结果按输入顺序返回。
func Map[T, R any](ctx context.Context, limit int, in []T, fn func(context.Context, T) R) []R {
	out := make([]R, len(in))
	tasks := make([]Task, len(in))
	for i, item := range in {
		tasks[i] = func(ctx context.Context) error {
			out[i] = fn(ctx, item)
			return nil
		}
	}
	RunLimited(ctx, limit, tasks)
	return out
}
