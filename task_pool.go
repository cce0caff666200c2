// Copyright 2026 The Relcheck Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package relcheck

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// TaskPool runs independent validation tasks with bounded concurrency.
// The validator itself is synchronous; the pool only fans out across inputs.
type TaskPool struct {
	semaphore chan struct{}
	logger    *slog.Logger
	wg        sync.WaitGroup
	mu        sync.Mutex
	failed    map[string]error
}

func NewTaskPool(poolSize int, logger *slog.Logger) *TaskPool {
	if poolSize < 1 {
		poolSize = 1
	}
	if logger == nil {
		// noop logger by default
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &TaskPool{
		semaphore: make(chan struct{}, poolSize),
		logger:    logger,
		failed:    make(map[string]error),
	}
}

// Enqueue schedules the task under the given id. Task errors are collected
// and available from FailedTasks after Join.
func (tp *TaskPool) Enqueue(id string, task func() error) {
	tp.wg.Add(1)
	go func() {
		tp.semaphore <- struct{}{}
		defer func() {
			<-tp.semaphore
			tp.wg.Done()
		}()

		tp.logger.Debug("executing task", "task_id", id)
		exeStartTime := time.Now()

		if err := task(); err != nil {
			tp.logger.Error("task failed", "task_id", id, "error", err.Error())
			tp.mu.Lock()
			tp.failed[id] = err
			tp.mu.Unlock()
		}

		tp.logger.Debug("completed task",
			"task_id", id,
			"elapsed_ms", time.Since(exeStartTime).Milliseconds())
	}()
}

// Join blocks until every enqueued task has finished.
func (tp *TaskPool) Join() {
	tp.wg.Wait()
}

// FailedTasks returns the errors of failed tasks keyed by task id.
func (tp *TaskPool) FailedTasks() map[string]error {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	failedCopy := make(map[string]error, len(tp.failed))
	for id, err := range tp.failed {
		failedCopy[id] = err
	}
	return failedCopy
}
