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
	"fmt"
	"sync/atomic"
	"testing"
)

func TestTaskPool_RunsEveryTask(t *testing.T) {
	pool := NewTaskPool(4, nil)

	var executed atomic.Int32
	for i := 0; i < 20; i++ {
		pool.Enqueue(fmt.Sprintf("task-%d", i), func() error {
			executed.Add(1)
			return nil
		})
	}
	pool.Join()

	if executed.Load() != 20 {
		t.Errorf("executed = %d, expected 20", executed.Load())
	}
	if failed := pool.FailedTasks(); len(failed) != 0 {
		t.Errorf("unexpected failed tasks: %v", failed)
	}
}

func TestTaskPool_CollectsFailures(t *testing.T) {
	pool := NewTaskPool(2, nil)

	pool.Enqueue("ok", func() error { return nil })
	pool.Enqueue("boom", func() error { return fmt.Errorf("boom") })
	pool.Join()

	failed := pool.FailedTasks()
	if len(failed) != 1 {
		t.Fatalf("got %d failed tasks, expected 1", len(failed))
	}
	if err, ok := failed["boom"]; !ok || err == nil {
		t.Errorf("failed tasks = %v, expected entry for `boom'", failed)
	}
}

func TestTaskPool_PoolSizeFloor(t *testing.T) {
	// zero or negative sizes fall back to serial execution
	pool := NewTaskPool(0, nil)

	pool.Enqueue("only", func() error { return nil })
	pool.Join()

	if failed := pool.FailedTasks(); len(failed) != 0 {
		t.Errorf("unexpected failed tasks: %v", failed)
	}
}
