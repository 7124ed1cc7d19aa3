package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/store"
)

type taskService struct {
	kv store.KV
}

func NewTaskService(kv store.KV) TaskService {
	return &taskService{kv: kv}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now().UTC()
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}

	tasks, err := store.LoadSlice[domain.Task](ctx, s.kv, store.KeyTasks)
	if err != nil {
		return err
	}
	tasks = append(tasks, *t)
	return store.SaveSlice(ctx, s.kv, store.KeyTasks, tasks)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	tasks, err := store.LoadSlice[domain.Task](ctx, s.kv, store.KeyTasks)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *taskService) List(ctx context.Context, includeCompleted bool) ([]domain.Task, error) {
	tasks, err := store.LoadSlice[domain.Task](ctx, s.kv, store.KeyTasks)
	if err != nil {
		return nil, err
	}
	if includeCompleted {
		return tasks, nil
	}
	pending := tasks[:0]
	for _, t := range tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	return pending, nil
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	tasks, err := store.LoadSlice[domain.Task](ctx, s.kv, store.KeyTasks)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == t.ID {
			tasks[i] = *t
			return store.SaveSlice(ctx, s.kv, store.KeyTasks, tasks)
		}
	}
	return ErrNotFound
}

// Toggle flips completion, stamping or clearing CompletedAt.
func (s *taskService) Toggle(ctx context.Context, id string) error {
	tasks, err := store.LoadSlice[domain.Task](ctx, s.kv, store.KeyTasks)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		if tasks[i].Completed {
			tasks[i].Completed = false
			tasks[i].CompletedAt = nil
		} else {
			now := time.Now().UTC()
			tasks[i].Completed = true
			tasks[i].CompletedAt = &now
		}
		return store.SaveSlice(ctx, s.kv, store.KeyTasks, tasks)
	}
	return ErrNotFound
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	tasks, err := store.LoadSlice[domain.Task](ctx, s.kv, store.KeyTasks)
	if err != nil {
		return err
	}
	kept := tasks[:0]
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return ErrNotFound
	}
	return store.SaveSlice(ctx, s.kv, store.KeyTasks, kept)
}
