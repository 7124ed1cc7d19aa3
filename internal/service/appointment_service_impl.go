package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/store"
)

type appointmentService struct {
	kv store.KV
}

func NewAppointmentService(kv store.KV) AppointmentService {
	return &appointmentService{kv: kv}
}

func (s *appointmentService) Create(ctx context.Context, a *domain.Appointment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.CreatedAt = time.Now().UTC()

	appts, err := store.LoadSlice[domain.Appointment](ctx, s.kv, store.KeyAppointments)
	if err != nil {
		return err
	}
	appts = append(appts, *a)
	return store.SaveSlice(ctx, s.kv, store.KeyAppointments, appts)
}

func (s *appointmentService) ListForDay(ctx context.Context, date time.Time) ([]domain.Appointment, error) {
	appts, err := store.LoadSlice[domain.Appointment](ctx, s.kv, store.KeyAppointments)
	if err != nil {
		return nil, err
	}
	out := []domain.Appointment{}
	for _, a := range appts {
		if domain.SameDay(a.Start, date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *appointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	return store.LoadSlice[domain.Appointment](ctx, s.kv, store.KeyAppointments)
}

func (s *appointmentService) Update(ctx context.Context, a *domain.Appointment) error {
	appts, err := store.LoadSlice[domain.Appointment](ctx, s.kv, store.KeyAppointments)
	if err != nil {
		return err
	}
	for i := range appts {
		if appts[i].ID == a.ID {
			appts[i] = *a
			return store.SaveSlice(ctx, s.kv, store.KeyAppointments, appts)
		}
	}
	return ErrNotFound
}

func (s *appointmentService) Delete(ctx context.Context, id string) error {
	appts, err := store.LoadSlice[domain.Appointment](ctx, s.kv, store.KeyAppointments)
	if err != nil {
		return err
	}
	kept := appts[:0]
	found := false
	for _, a := range appts {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return ErrNotFound
	}
	return store.SaveSlice(ctx, s.kv, store.KeyAppointments, kept)
}
