package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCreateToken(t *testing.T) {
	l := NewInMemory()

	tokenId, err := l.CreateToken(TokenConfig{
		Total:    1000,
		Decimals: 0,
		Reserve:  "alice",
		Name:     "TEST",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokenId)

	bal, err := l.Balance(tokenId, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), bal)

	_, err = l.CreateToken(TokenConfig{Total: 0, Reserve: "alice"})
	assert.ErrorIs(t, err, ErrInvalidTokenConfig)
	_, err = l.CreateToken(TokenConfig{Total: 10})
	assert.ErrorIs(t, err, ErrInvalidTokenConfig)
}

func TestInMemoryTransferToken(t *testing.T) {
	l := NewInMemory()
	tokenId, err := l.CreateToken(TokenConfig{Total: 100, Reserve: "alice"})
	require.NoError(t, err)

	require.NoError(t, l.TransferToken(tokenId, 40, "alice", "bob"))
	aliceBal, _ := l.Balance(tokenId, "alice")
	bobBal, _ := l.Balance(tokenId, "bob")
	assert.Equal(t, uint64(60), aliceBal)
	assert.Equal(t, uint64(40), bobBal)

	err = l.TransferToken(tokenId, 61, "alice", "bob")
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	err = l.TransferToken("no-such-token", 1, "alice", "bob")
	assert.ErrorIs(t, err, ErrTokenNotExist)
	err = l.TransferToken(tokenId, 0, "alice", "bob")
	assert.ErrorIs(t, err, ErrZeroAmountDisallowed)
}

func TestInMemorySendPayment(t *testing.T) {
	l := NewInMemory()
	l.Credit("alice", 500)

	require.NoError(t, l.SendPayment(200, "alice", "bob"))
	assert.Equal(t, uint64(300), l.NativeBalance("alice"))
	assert.Equal(t, uint64(200), l.NativeBalance("bob"))

	err := l.SendPayment(301, "alice", "bob")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestInMemoryClock(t *testing.T) {
	l := NewInMemory()
	l.SetNow(1000)
	assert.Equal(t, int64(1000), l.Now())
	l.Advance(500)
	assert.Equal(t, int64(1500), l.Now())
}

func TestInMemoryClockFollowsWallTime(t *testing.T) {
	l := NewInMemory()

	wall := time.Now().Unix()
	assert.InDelta(t, wall, l.Now(), 2)

	l.Advance(3600)
	assert.InDelta(t, wall+3600, l.Now(), 2)

	// pinning stops the clock
	l.SetNow(1700000000)
	first := l.Now()
	time.Sleep(1100 * time.Millisecond)
	assert.Equal(t, first, l.Now())
}

func TestInMemoryReconfigure(t *testing.T) {
	l := NewInMemory()
	tokenId, err := l.CreateToken(TokenConfig{Total: 1, Reserve: "alice", URL: "ipfs://a"})
	require.NoError(t, err)

	require.NoError(t, l.ReconfigureToken(tokenId, Authorities{Manager: "m", Freeze: "f"}))
	cfg, ok := l.TokenConfig(tokenId)
	require.True(t, ok)
	assert.Equal(t, "m", cfg.Manager)
	assert.Equal(t, "f", cfg.Freeze)

	require.NoError(t, l.UpdateTokenURL(tokenId, "ipfs://b"))
	cfg, _ = l.TokenConfig(tokenId)
	assert.Equal(t, "ipfs://b", cfg.URL)

	assert.ErrorIs(t, l.UpdateTokenURL("nope", "x"), ErrTokenNotExist)
}
