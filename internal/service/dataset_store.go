package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"review-mine/internal/domain"
	"review-mine/internal/repository"
	"review-mine/internal/seed"
)

var (
	ErrNoData          = errors.New("dataset unavailable")
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileReader es lo minimo que necesitan los servicios que leen perfiles.
type ProfileReader interface {
	Profile(ctx context.Context, id string) (domain.UserProfile, error)
}

// DatasetStore carga el dataset una vez (cache persistido o seed) y sirve lecturas y
// escrituras desde ahi. El documento persistido es cache y destino de escritura a la vez.
type DatasetStore struct {
	logger *zap.Logger
	docs   repository.DocumentStore
	source seed.Source
	key    string

	mu      sync.RWMutex
	loaded  bool
	current domain.Dataset
}

func NewDatasetStore(logger *zap.Logger, docs repository.DocumentStore, source seed.Source, key string) *DatasetStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DatasetStore{
		logger: logger,
		docs:   docs,
		source: source,
		key:    key,
	}
}

// Load devuelve el dataset. Los errores de carga siempre envuelven ErrNoData.
// La primera carga corre bajo el lock de escritura: cargas concurrentes esperan y
// reutilizan el resultado en vez de volver a leer.
func (s *DatasetStore) Load(ctx context.Context) (domain.Dataset, error) {
	s.mu.RLock()
	if s.loaded {
		ds := s.current.Clone()
		s.mu.RUnlock()
		return ds, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		if err := s.loadLocked(ctx); err != nil {
			return domain.Dataset{}, err
		}
	}
	return s.current.Clone(), nil
}

// loadLocked requiere s.mu tomado en escritura.
func (s *DatasetStore) loadLocked(ctx context.Context) error {
	ds, found, err := s.readCache(ctx)
	if err != nil {
		// Sin poder leer el documento no se sabe si hay ediciones guardadas: no se pisa.
		s.logger.Error("read cached dataset failed", zap.String("key", s.key), zap.Error(err))
		return fmt.Errorf("%w: read cache: %v", ErrNoData, err)
	}
	if found {
		s.current = ds
		s.loaded = true
		return nil
	}

	ds, err = s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error("seed fetch failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrNoData, err)
	}

	body, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("%w: encode seed: %v", ErrNoData, err)
	}
	if err := s.docs.Put(ctx, s.key, body); err != nil {
		s.logger.Warn("persist seed failed", zap.String("key", s.key), zap.Error(err))
	}

	s.current = ds
	s.loaded = true
	s.logger.Info("dataset seeded", zap.Int("users", len(ds.Users)), zap.Int("posts", len(ds.Posts)))
	return nil
}

// readCache distingue tres casos: error de lectura (err), documento ausente o corrupto
// (found=false) y documento valido. Solo los dos ultimos permiten sembrar.
func (s *DatasetStore) readCache(ctx context.Context) (domain.Dataset, bool, error) {
	body, found, err := s.docs.Get(ctx, s.key)
	if err != nil {
		return domain.Dataset{}, false, err
	}
	if !found {
		return domain.Dataset{}, false, nil
	}
	ds, err := seed.Decode(body)
	if err != nil {
		s.logger.Warn("cached dataset corrupt, reseeding", zap.String("key", s.key), zap.Error(err))
		return domain.Dataset{}, false, nil
	}
	return ds, true, nil
}

// Update reemplaza el perfil completo con el mismo id y re-persiste el documento.
// Un id desconocido es un no-op silencioso: no se escribe nada.
func (s *DatasetStore) Update(ctx context.Context, profile domain.UserProfile) (domain.Dataset, error) {
	if _, err := s.Load(ctx); err != nil {
		return domain.Dataset{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, u := range s.current.Users {
		if u.ID == profile.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Debug("update ignored, unknown profile", zap.String("profile_id", profile.ID))
		return s.current.Clone(), nil
	}

	next := s.current.Clone()
	next.Users[idx] = profile.Clone()

	body, err := json.Marshal(next)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("encode dataset: %w", err)
	}
	if err := s.docs.Put(ctx, s.key, body); err != nil {
		return domain.Dataset{}, fmt.Errorf("persist dataset: %w", err)
	}

	s.current = next
	return next.Clone(), nil
}

// Profile busca un perfil por id en el dataset cargado.
func (s *DatasetStore) Profile(ctx context.Context, id string) (domain.UserProfile, error) {
	ds, err := s.Load(ctx)
	if err != nil {
		return domain.UserProfile{}, err
	}
	p, ok := ds.FindUser(id)
	if !ok {
		return domain.UserProfile{}, ErrProfileNotFound
	}
	return p, nil
}
