package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/bnema/litebot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func message(chat, id, text string) domain.Message {
	return domain.Message{Key: domain.MessageKey{ChatID: chat, ID: id}, Text: text}
}

func TestStoreRecordAndLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(10)
	store.Record(message("5511999@s.whatsapp.net", "A1", "hello"))

	got, ok := store.Load("5511999@s.whatsapp.net", "A1")
	require.True(t, ok)
	assert.Equal(t, "hello", got.Text)

	_, ok = store.Load("5511999@g.us", "A1")
	assert.False(t, ok, "same id in another chat is a different message")
}

func TestStoreIgnoresMessagesWithoutKey(t *testing.T) {
	t.Parallel()

	store := NewStore(10)
	store.Record(message("", "A1", "x"))
	store.Record(message("chat", "", "x"))

	assert.Equal(t, 0, store.Len())
}

func TestStoreEvictsOldest(t *testing.T) {
	t.Parallel()

	store := NewStore(2)
	store.Record(message("c", "1", "one"))
	store.Record(message("c", "2", "two"))
	store.Record(message("c", "1", "one again"))
	store.Record(message("c", "3", "three"))

	assert.Equal(t, 2, store.Len())
	_, ok := store.Load("c", "2")
	assert.False(t, ok)

	got, ok := store.Load("c", "1")
	require.True(t, ok)
	assert.Equal(t, "one again", got.Text)
}

func TestStoreDefaultCapacity(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	for i := 0; i < DefaultCapacity+5; i++ {
		store.Record(message("c", fmt.Sprint(i), ""))
	}

	assert.Equal(t, DefaultCapacity, store.Len())
}

func TestRetryCounter(t *testing.T) {
	t.Parallel()

	counter := NewRetryCounter()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.Increment("msg-1")
		}()
	}
	wg.Wait()

	assert.Equal(t, 51, counter.Increment("msg-1"))
	assert.Equal(t, 1, counter.Increment("msg-2"))
}
