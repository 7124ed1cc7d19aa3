package service

import (
	"time"

	"github.com/pbarbosa/vida/internal/store"
)

func setupKV() store.KV {
	return store.NewMemoryKV()
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
