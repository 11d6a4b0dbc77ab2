package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shouni/go-fashion-kit/pkg/domain"
)

func TestStore(t *testing.T) {
	t.Run("作成したセッションを取得できること", func(t *testing.T) {
		st := NewStore(time.Minute, 3)
		s, err := st.Create(false)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if s.ID == "" {
			t.Fatal("セッションIDが空です")
		}
		got, err := st.Get(s.ID)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.Credits != 3 || got.Stage != domain.StageEmpty {
			t.Errorf("got credits=%d stage=%s", got.Credits, got.Stage)
		}
	})

	t.Run("管理者は無制限になること", func(t *testing.T) {
		st := NewStore(time.Minute, 3)
		s, err := st.Create(true)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if s.Credits != domain.UnlimitedCredits {
			t.Errorf("Credits = %d, want %d", s.Credits, domain.UnlimitedCredits)
		}
	})

	t.Run("Put で更新が反映されること", func(t *testing.T) {
		st := NewStore(time.Minute, 1)
		s, _ := st.Create(false)
		s.Prompt = "paisley"
		st.Put(s)
		got, _ := st.Get(s.ID)
		if got.Prompt != "paisley" {
			t.Errorf("Prompt = %q", got.Prompt)
		}
	})

	t.Run("存在しない ID は ErrNotFound", func(t *testing.T) {
		st := NewStore(0, 1)
		if _, err := st.Get("missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("Delete 後は取得できないこと", func(t *testing.T) {
		st := NewStore(time.Minute, 1)
		s, _ := st.Create(false)
		st.Delete(s.ID)
		if _, err := st.Get(s.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestStore_Lock(t *testing.T) {
	st := NewStore(time.Minute, 1)
	s, err := st.Create(false)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("同じセッションの読み書きが直列化されること", func(t *testing.T) {
		const n = 10
		var wg sync.WaitGroup
		var billed atomic.Int32
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := st.Lock(s.ID)
				defer unlock()

				cur, err := st.Get(s.ID)
				if err != nil || !cur.HasCredits() {
					return
				}
				time.Sleep(time.Millisecond)
				st.Put(cur.ConsumeCredit())
				billed.Add(1)
			}()
		}
		wg.Wait()

		if billed.Load() != 1 {
			t.Errorf("billed = %d, want 1", billed.Load())
		}
	})

	t.Run("削除したセッションのロックは破棄されること", func(t *testing.T) {
		st.Delete(s.ID)
		st.mu.Lock()
		_, ok := st.locks[s.ID]
		st.mu.Unlock()
		if ok {
			t.Error("削除後もロックが残っています")
		}
	})
}
