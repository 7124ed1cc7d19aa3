package service

import (
	"context"

	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/store"
)

type profileService struct {
	kv store.KV
}

func NewProfileService(kv store.KV) ProfileService {
	return &profileService{kv: kv}
}

// Get never fails on missing data: a fresh install sees the defaults.
func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	p, err := store.LoadValue(ctx, s.kv, store.KeyProfile, domain.DefaultProfile())
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *profileService) Save(ctx context.Context, p *domain.UserProfile) error {
	return store.SaveValue(ctx, s.kv, store.KeyProfile, *p)
}
