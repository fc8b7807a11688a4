package ledger

import (
	"errors"
	"strconv"
	"sync"
	"time"
)

var (
	ErrTokenNotExist        = errors.New("token_not_exist")
	ErrInsufficientBalance  = errors.New("insufficient_balance")
	ErrInsufficientFunds    = errors.New("insufficient_funds")
	ErrInvalidTokenConfig   = errors.New("invalid_token_config")
	ErrZeroAmountDisallowed = errors.New("zero_amount")
)

// InMemory is a process-local ledger used by tests and single-node
// deployments. Token ids are sequential. The clock follows wall time
// until pinned with SetNow, so expiry and maturity windows progress in a
// running service while tests drive them deterministically.
type InMemory struct {
	lock sync.RWMutex

	nextId   uint64
	tokens   map[string]TokenConfig
	balances map[string]map[string]uint64 // tokenId -> owner -> balance
	native   map[string]uint64            // identity -> native balance
	pinned   bool
	now      int64 // effective only while pinned
	offset   int64 // applied to wall time otherwise
}

func NewInMemory() *InMemory {
	return &InMemory{
		nextId:   1000,
		tokens:   make(map[string]TokenConfig),
		balances: make(map[string]map[string]uint64),
		native:   make(map[string]uint64),
	}
}

// SetNow pins the clock to a fixed timestamp; it no longer follows wall
// time until the process restarts.
func (l *InMemory) SetNow(ts int64) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.pinned = true
	l.now = ts
}

func (l *InMemory) Advance(seconds int64) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.pinned {
		l.now += seconds
		return
	}
	l.offset += seconds
}

func (l *InMemory) Now() int64 {
	l.lock.RLock()
	defer l.lock.RUnlock()
	if l.pinned {
		return l.now
	}
	return time.Now().Unix() + l.offset
}

// Credit funds an identity's native balance; test setup helper.
func (l *InMemory) Credit(identity string, amount uint64) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.native[identity] += amount
}

func (l *InMemory) NativeBalance(identity string) uint64 {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.native[identity]
}

func (l *InMemory) CreateToken(cfg TokenConfig) (string, error) {
	if cfg.Total == 0 || cfg.Reserve == "" {
		return "", ErrInvalidTokenConfig
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	l.nextId++
	tokenId := strconv.FormatUint(l.nextId, 10)
	l.tokens[tokenId] = cfg
	l.balances[tokenId] = map[string]uint64{
		cfg.Reserve: cfg.Total,
	}
	return tokenId, nil
}

func (l *InMemory) TransferToken(tokenId string, amount uint64, from, to string) error {
	if amount == 0 {
		return ErrZeroAmountDisallowed
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	bals, ok := l.balances[tokenId]
	if !ok {
		return ErrTokenNotExist
	}
	if bals[from] < amount {
		return ErrInsufficientBalance
	}
	bals[from] -= amount
	bals[to] += amount
	return nil
}

func (l *InMemory) SendPayment(amount uint64, from, to string) error {
	if amount == 0 {
		return ErrZeroAmountDisallowed
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.native[from] < amount {
		return ErrInsufficientFunds
	}
	l.native[from] -= amount
	l.native[to] += amount
	return nil
}

func (l *InMemory) ReconfigureToken(tokenId string, auth Authorities) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	cfg, ok := l.tokens[tokenId]
	if !ok {
		return ErrTokenNotExist
	}
	cfg.Manager = auth.Manager
	cfg.Reserve = auth.Reserve
	cfg.Freeze = auth.Freeze
	cfg.Clawback = auth.Clawback
	l.tokens[tokenId] = cfg
	return nil
}

func (l *InMemory) UpdateTokenURL(tokenId, url string) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	cfg, ok := l.tokens[tokenId]
	if !ok {
		return ErrTokenNotExist
	}
	cfg.URL = url
	l.tokens[tokenId] = cfg
	return nil
}

func (l *InMemory) Balance(tokenId, owner string) (uint64, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	bals, ok := l.balances[tokenId]
	if !ok {
		return 0, ErrTokenNotExist
	}
	return bals[owner], nil
}

func (l *InMemory) TokenConfig(tokenId string) (TokenConfig, bool) {
	l.lock.RLock()
	defer l.lock.RUnlock()
	cfg, ok := l.tokens[tokenId]
	return cfg, ok
}
