package branding

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-redis/redis/v8"
)

// Identidade visual da barbearia (nome exibido, texto institucional):
// configuração pequena e lida por toda tela. Uma cópia em memória evita uma
// ida ao redis por view; Update invalida a cópia explicitamente.

const redisKey = "branding"

const DefaultName = "BarberStyle"

type Branding struct {
	Name  string `json:"name"`
	About string `json:"about,omitempty"`
}

type Store struct {
	rdb *redis.Client

	mu     sync.RWMutex
	cached *Branding
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Get devolve a identidade corrente, preenchendo o cache na primeira
// leitura. Sem nada gravado, vale o nome padrão.
func (s *Store) Get(ctx context.Context) (Branding, error) {
	s.mu.RLock()
	if s.cached != nil {
		b := *s.cached
		s.mu.RUnlock()
		return b, nil
	}
	s.mu.RUnlock()

	b := Branding{Name: DefaultName}

	data, err := s.rdb.Get(ctx, redisKey).Bytes()
	switch {
	case err == redis.Nil:
		// sem registro: fica o padrão
	case err != nil:
		return b, err
	default:
		if err := json.Unmarshal(data, &b); err != nil {
			return Branding{Name: DefaultName}, err
		}
	}

	s.mu.Lock()
	s.cached = &b
	s.mu.Unlock()

	return b, nil
}

func (s *Store) Update(ctx context.Context, b Branding) error {
	if b.Name == "" {
		b.Name = DefaultName
	}

	data, err := json.Marshal(b)
	if err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, redisKey, data, 0).Err(); err != nil {
		return err
	}

	s.Invalidate()
	return nil
}

// Invalidate descarta a cópia em memória; a próxima leitura volta ao redis.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}
