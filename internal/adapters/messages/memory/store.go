package memory

import (
	"container/list"
	"sync"

	"github.com/bnema/litebot/internal/domain"
	"github.com/bnema/litebot/internal/ports"
)

const DefaultCapacity = 1000

type messageRef struct {
	chatID string
	id     string
}

// Store remembers the most recent messages so the session can resolve
// retry requests for them. The oldest message is evicted once full.
type Store struct {
	capacity int

	mu    sync.Mutex
	order *list.List
	index map[messageRef]*list.Element
}

var _ ports.MessageStore = (*Store)(nil)

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Store{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[messageRef]*list.Element, capacity),
	}
}

func (s *Store) Record(msg domain.Message) {
	if msg.Key.ChatID == "" || msg.Key.ID == "" {
		return
	}

	ref := messageRef{chatID: msg.Key.ChatID, id: msg.Key.ID}

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.index[ref]; ok {
		elem.Value = msg
		s.order.MoveToFront(elem)
		return
	}

	s.index[ref] = s.order.PushFront(msg)
	for s.order.Len() > s.capacity {
		oldest := s.order.Back()
		old := oldest.Value.(domain.Message)
		delete(s.index, messageRef{chatID: old.Key.ChatID, id: old.Key.ID})
		s.order.Remove(oldest)
	}
}

func (s *Store) Load(chatID, id string) (domain.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.index[messageRef{chatID: chatID, id: id}]
	if !ok {
		return domain.Message{}, false
	}

	return elem.Value.(domain.Message), true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.order.Len()
}

// RetryCounter is an in-process retry count per outgoing message id.
type RetryCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

var _ ports.RetryCounter = (*RetryCounter)(nil)

func NewRetryCounter() *RetryCounter {
	return &RetryCounter{counts: map[string]int{}}
}

func (c *RetryCounter) Increment(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counts[key]++
	return c.counts[key]
}
