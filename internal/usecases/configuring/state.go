package configuring

import (
	"sync"
	"time"
)

// stateTTL é o tempo que o usuário tem para concluir o login na plataforma de pedidos
const stateTTL = 10 * time.Minute

// stateStore guarda os states emitidos para o OAuth até o callback
type stateStore struct {
	mutex  sync.Mutex
	issued map[string]time.Time
	now    func() time.Time
}

func newStateStore() *stateStore {
	return &stateStore{
		issued: make(map[string]time.Time),
		now:    time.Now,
	}
}

func (s *stateStore) add(state string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	for key, expiresAt := range s.issued {
		if now.After(expiresAt) {
			delete(s.issued, key)
		}
	}

	s.issued[state] = now.Add(stateTTL)
}

// consume valida e remove o state; cada state vale uma única vez
func (s *stateStore) consume(state string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	expiresAt, ok := s.issued[state]
	if !ok {
		return false
	}
	delete(s.issued, state)

	return !s.now().After(expiresAt)
}
