package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shouni/go-fashion-kit/pkg/domain"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	// DefaultTTL は最後の更新からセッションが破棄されるまでの時間です。
	DefaultTTL           = 30 * time.Minute
	cacheCleanupInterval = 15 * time.Minute
)

// ErrNotFound はセッションが存在しないか期限切れの場合に返されます。
var ErrNotFound = errors.New("セッションが見つかりません")

// Store はデザインセッションをメモリ上に保持します。更新のたびに有効期限が延長されます。
// Get から Put までの読み書きを一つのセッションについて直列化するには Lock を使います。
type Store struct {
	items          *cache.Cache
	ttl            time.Duration
	defaultCredits int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore は Store を初期化します。ttl が 0 以下の場合は DefaultTTL を使います。
func NewStore(ttl time.Duration, defaultCredits int) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	st := &Store{
		items:          cache.New(ttl, cacheCleanupInterval),
		ttl:            ttl,
		defaultCredits: defaultCredits,
		locks:          make(map[string]*sync.Mutex),
	}
	st.items.OnEvicted(func(id string, _ interface{}) { st.forget(id) })
	return st
}

// Lock はセッション単位のロックを取得し、解放用の関数を返します。
// 利用回数の確認から消費までを一つのリクエストに閉じ込めるために使います。
func (st *Store) Lock(id string) (unlock func()) {
	st.mu.Lock()
	l, ok := st.locks[id]
	if !ok {
		l = &sync.Mutex{}
		st.locks[id] = l
	}
	st.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (st *Store) forget(id string) {
	st.mu.Lock()
	delete(st.locks, id)
	st.mu.Unlock()
}

// Create は新しい ID で空のセッションを作成して保存します。
func (st *Store) Create(admin bool) (domain.Session, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.Session{}, fmt.Errorf("セッションIDの生成に失敗しました: %w", err)
	}
	s := domain.NewSession(id.String(), st.defaultCredits, admin)
	st.Put(s)
	return s, nil
}

// Get は ID に対応するセッションを返します。
func (st *Store) Get(id string) (domain.Session, error) {
	v, found := st.items.Get(id)
	if !found {
		return domain.Session{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s, ok := v.(domain.Session)
	if !ok {
		return domain.Session{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

// Put はセッションを保存し、有効期限を延長します。
func (st *Store) Put(s domain.Session) {
	st.items.Set(s.ID, s, st.ttl)
}

// Delete はセッションを破棄します。ロックの後始末は OnEvicted で行われます。
func (st *Store) Delete(id string) {
	st.items.Delete(id)
}

// Len は保持しているセッション数を返します。期限切れで未回収のものを含みます。
func (st *Store) Len() int {
	return st.items.ItemCount()
}
