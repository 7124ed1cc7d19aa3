package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/importer"
	"github.com/pbarbosa/vida/internal/store"
)

type importService struct {
	kv store.KV
}

func NewImportService(kv store.KV) ImportService {
	return &importService{kv: kv}
}

func (s *importService) ImportICS(ctx context.Context, path string, from, to time.Time) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening calendar file: %w", err)
	}
	defer f.Close()

	events, err := importer.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}
	incoming := importer.Appointments(events, from, to)

	appts, err := store.LoadSlice[domain.Appointment](ctx, s.kv, store.KeyAppointments)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(appts))
	for _, a := range appts {
		existing[a.ID] = true
	}

	result := &ImportResult{}
	now := time.Now().UTC()
	for _, a := range incoming {
		if existing[a.ID] {
			result.Skipped++
			continue
		}
		a.CreatedAt = now
		appts = append(appts, a)
		result.Imported++
	}
	if result.Imported > 0 {
		if err := store.SaveSlice(ctx, s.kv, store.KeyAppointments, appts); err != nil {
			return nil, err
		}
	}
	return result, nil
}
