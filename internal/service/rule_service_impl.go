package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/store"
)

type ruleService struct {
	kv store.KV
}

func NewRuleService(kv store.KV) RuleService {
	return &ruleService{kv: kv}
}

func (s *ruleService) Create(ctx context.Context, r *domain.RecurrenceRule) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	rules, err := store.LoadSlice[domain.RecurrenceRule](ctx, s.kv, store.KeyRules)
	if err != nil {
		return err
	}
	rules = append(rules, *r)
	return store.SaveSlice(ctx, s.kv, store.KeyRules, rules)
}

func (s *ruleService) List(ctx context.Context) ([]domain.RecurrenceRule, error) {
	return store.LoadSlice[domain.RecurrenceRule](ctx, s.kv, store.KeyRules)
}

func (s *ruleService) Update(ctx context.Context, r *domain.RecurrenceRule) error {
	rules, err := store.LoadSlice[domain.RecurrenceRule](ctx, s.kv, store.KeyRules)
	if err != nil {
		return err
	}
	for i := range rules {
		if rules[i].ID == r.ID {
			rules[i] = *r
			return store.SaveSlice(ctx, s.kv, store.KeyRules, rules)
		}
	}
	return ErrNotFound
}

// AddException suppresses the rule on one concrete date. Adding the same
// date twice is a no-op.
func (s *ruleService) AddException(ctx context.Context, id string, date time.Time) error {
	rules, err := store.LoadSlice[domain.RecurrenceRule](ctx, s.kv, store.KeyRules)
	if err != nil {
		return err
	}
	dateStr := domain.DateString(date)
	for i := range rules {
		if rules[i].ID != id {
			continue
		}
		for _, d := range rules[i].ExceptionDates {
			if d == dateStr {
				return nil
			}
		}
		rules[i].ExceptionDates = append(rules[i].ExceptionDates, dateStr)
		return store.SaveSlice(ctx, s.kv, store.KeyRules, rules)
	}
	return ErrNotFound
}

func (s *ruleService) Delete(ctx context.Context, id string) error {
	rules, err := store.LoadSlice[domain.RecurrenceRule](ctx, s.kv, store.KeyRules)
	if err != nil {
		return err
	}
	kept := rules[:0]
	found := false
	for _, r := range rules {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return ErrNotFound
	}
	return store.SaveSlice(ctx, s.kv, store.KeyRules, kept)
}
