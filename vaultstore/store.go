// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vaultstore

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/storage"
	"github.com/bitmark-inc/vaultd/vault"
	"github.com/bitmark-inc/vaultd/vaultrecord"
)

// MaximumHistoryCount - limit on journal entries returned at once
const MaximumHistoryCount = 100

// Pools - the storage pools used by the store
type Pools struct {
	Vaults           *storage.PoolHandle
	JournalNextCount *storage.PoolHandle
	Journal          *storage.PoolHandle
}

// DefaultPools - the pools of the opened database
func DefaultPools() Pools {
	return Pools{
		Vaults:           storage.Pool.Vaults,
		JournalNextCount: storage.Pool.JournalNextCount,
		Journal:          storage.Pool.Journal,
	}
}

// Options - behaviour switches
type Options struct {
	Testing             bool // vault and owner accounts must be test accounts
	AllowInsolventSlash bool // slash may leave a vault insolvent
}

// Result - outcome of a ledger operation
type Result struct {
	Amount   uint64       `json:"amount,string"`
	Ledger   vault.Ledger `json:"ledger"`
	Sequence uint64       `json:"sequence,string"`
}

// Store - the single writer for all vaults
type Store struct {
	sync.Mutex

	log            *logger.L
	pools          Pools
	newTransaction func() (storage.Transaction, error)
	options        Options
}

// New - create a store
func New(log *logger.L,
	pools Pools,
	newTransaction func() (storage.Transaction, error),
	options Options,
) *Store {
	return &Store{
		log:            log,
		pools:          pools,
		newTransaction: newTransaction,
		options:        options,
	}
}

// Create - add an empty vault
func (s *Store) Create(vaultAccount *account.Account, owner *account.Account) (*Result, error) {
	if err := s.checkNetwork(vaultAccount); nil != err {
		return nil, err
	}
	if err := s.checkNetwork(owner); nil != err {
		return nil, err
	}

	record, err := vaultrecord.New(owner)
	if nil != err {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()

	trx, err := s.newTransaction()
	if nil != err {
		return nil, err
	}

	vaultKey := vaultAccount.PublicKeyBytes()
	if trx.Has(s.pools.Vaults, vaultKey) {
		trx.Abort()
		return nil, fault.ErrVaultAlreadyExists
	}

	packed := record.Pack()
	trx.Put(s.pools.Vaults, vaultKey, packed[:])

	entry := &Entry{
		Operation: OpCreate,
		Ledger:    record.Ledger(),
	}
	sequence := s.appendJournal(trx, vaultKey, entry)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		s.log.Errorf("create: vault: %s  commit error: %s", vaultAccount, err)
		return nil, err
	}

	s.log.Infof("create: vault: %s  owner: %s", vaultAccount, owner)

	return &Result{
		Ledger:   record.Ledger(),
		Sequence: sequence,
	}, nil
}

// Deposit - add tokens, result amount is the shares minted
func (s *Store) Deposit(vaultAccount *account.Account, amount uint64) (*Result, error) {
	return s.apply(vaultAccount, OpDeposit, amount)
}

// Withdraw - redeem shares, result amount is the tokens released
func (s *Store) Withdraw(vaultAccount *account.Account, shares uint64) (*Result, error) {
	return s.apply(vaultAccount, OpWithdraw, shares)
}

// Reward - add tokens without minting shares
func (s *Store) Reward(vaultAccount *account.Account, amount uint64) (*Result, error) {
	return s.apply(vaultAccount, OpReward, amount)
}

// Slash - remove tokens without burning shares
func (s *Store) Slash(vaultAccount *account.Account, amount uint64) (*Result, error) {
	return s.apply(vaultAccount, OpSlash, amount)
}

// load, modify and store one vault
func (s *Store) apply(vaultAccount *account.Account, op Operation, amount uint64) (*Result, error) {
	if err := s.checkNetwork(vaultAccount); nil != err {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()

	trx, err := s.newTransaction()
	if nil != err {
		return nil, err
	}

	vaultKey := vaultAccount.PublicKeyBytes()
	record, err := s.load(trx, vaultKey)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	ledger := record.Ledger()
	result, err := s.applyToLedger(&ledger, op, amount)
	if nil != err {
		trx.Abort()
		s.log.Warnf("%s: vault: %s  amount: %d  %s  error: %s", op, vaultAccount, amount, record.Ledger(), err)
		return nil, err
	}

	record.SetLedger(ledger)
	packed := record.Pack()
	trx.Put(s.pools.Vaults, vaultKey, packed[:])

	entry := &Entry{
		Operation: op,
		Amount:    amount,
		Result:    result,
		Ledger:    ledger,
	}
	sequence := s.appendJournal(trx, vaultKey, entry)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		s.log.Errorf("%s: vault: %s  commit error: %s", op, vaultAccount, err)
		return nil, err
	}

	s.log.Infof("%s: vault: %s  amount: %d  result: %d  %s", op, vaultAccount, amount, result, ledger)
	if !ledger.IsSolvent() {
		s.log.Warnf("%s: vault: %s  is insolvent: %s", op, vaultAccount, ledger)
	}

	return &Result{
		Amount:   result,
		Ledger:   ledger,
		Sequence: sequence,
	}, nil
}

func (s *Store) applyToLedger(ledger *vault.Ledger, op Operation, amount uint64) (uint64, error) {
	switch op {
	case OpDeposit:
		return ledger.Deposit(amount)
	case OpWithdraw:
		return ledger.Withdraw(amount)
	case OpReward:
		return 0, ledger.Reward(amount)
	case OpSlash:
		if s.options.AllowInsolventSlash {
			return 0, ledger.Slash(amount)
		}
		return 0, ledger.SlashSolvent(amount)
	default:
		return 0, fault.ErrUnknownOperation
	}
}

// read a vault record including pending writes
func (s *Store) load(trx storage.Transaction, vaultKey []byte) (*vaultrecord.Record, error) {
	buffer := trx.Get(s.pools.Vaults, vaultKey)
	if nil == buffer {
		return nil, fault.ErrVaultNotFound
	}
	record, err := vaultrecord.Unpack(buffer)
	if nil != err {
		s.log.Criticalf("vault: %x  corrupt record: %x  error: %s", vaultKey, buffer, err)
		return nil, err
	}
	return record, nil
}

// queue a journal entry, returns its sequence number
func (s *Store) appendJournal(trx storage.Transaction, vaultKey []byte, entry *Entry) uint64 {
	sequence, _ := trx.GetN(s.pools.JournalNextCount, vaultKey)
	entry.Sequence = sequence

	trx.Put(s.pools.Journal, journalKey(vaultKey, sequence), entry.Pack())
	trx.PutN(s.pools.JournalNextCount, vaultKey, sequence+1)
	return sequence
}

func (s *Store) checkNetwork(a *account.Account) error {
	if nil == a {
		return fault.ErrCannotDecodeAccount
	}
	if a.IsTesting() != s.options.Testing {
		return fault.ErrWrongNetworkForAccount
	}
	return nil
}

// Get - current state of a vault
func (s *Store) Get(vaultAccount *account.Account) (*vaultrecord.Record, error) {
	if err := s.checkNetwork(vaultAccount); nil != err {
		return nil, err
	}

	// pool reads see the pending writes of an open transaction
	s.Lock()
	defer s.Unlock()

	buffer := s.pools.Vaults.Get(vaultAccount.PublicKeyBytes())
	if nil == buffer {
		return nil, fault.ErrVaultNotFound
	}
	return vaultrecord.Unpack(buffer)
}

// History - journal entries from start in order
func (s *Store) History(vaultAccount *account.Account, start uint64, count int) ([]*Entry, error) {
	if err := s.checkNetwork(vaultAccount); nil != err {
		return nil, err
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	if count > MaximumHistoryCount {
		count = MaximumHistoryCount
	}

	s.Lock()
	defer s.Unlock()

	vaultKey := vaultAccount.PublicKeyBytes()
	if !s.pools.Vaults.Has(vaultKey) {
		return nil, fault.ErrVaultNotFound
	}

	cursor := s.pools.Journal.NewPrefixCursor(vaultKey).Seek(journalKey(vaultKey, start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	entries := make([]*Entry, 0, len(elements))
	for _, e := range elements {
		entry, err := decodeJournalElement(vaultKey, e)
		if nil != err {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// LastEntry - the most recent journal entry of a vault
func (s *Store) LastEntry(vaultAccount *account.Account) (*Entry, error) {
	if err := s.checkNetwork(vaultAccount); nil != err {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()

	vaultKey := vaultAccount.PublicKeyBytes()
	if !s.pools.Vaults.Has(vaultKey) {
		return nil, fault.ErrVaultNotFound
	}

	e, found := s.pools.Journal.LastElement(vaultKey)
	if !found {
		return nil, fault.ErrVaultNotFound
	}
	return decodeJournalElement(vaultKey, e)
}

// Prune - remove the journal entries of a vault with sequence below before
//
// the most recent entry is always kept and the next sequence number is
// not changed, so sequence numbers are never reused
func (s *Store) Prune(vaultAccount *account.Account, before uint64) (int, error) {
	if err := s.checkNetwork(vaultAccount); nil != err {
		return 0, err
	}

	s.Lock()
	defer s.Unlock()

	trx, err := s.newTransaction()
	if nil != err {
		return 0, err
	}

	vaultKey := vaultAccount.PublicKeyBytes()
	if !trx.Has(s.pools.Vaults, vaultKey) {
		trx.Abort()
		return 0, fault.ErrVaultNotFound
	}

	next, _ := trx.GetN(s.pools.JournalNextCount, vaultKey)
	if next > 0 && before > next-1 {
		before = next - 1
	}

	keys := make([][]byte, 0, 16)
	err = s.pools.Journal.NewPrefixCursor(vaultKey).Map(func(key []byte, value []byte) error {
		if len(key) != len(vaultKey)+8 {
			return fault.ErrJournalEntryLength
		}
		if binary.BigEndian.Uint64(key[len(vaultKey):]) >= before {
			return errPruneLimit
		}
		keys = append(keys, key)
		return nil
	})
	if nil != err && errPruneLimit != err {
		trx.Abort()
		return 0, err
	}

	for _, key := range keys {
		trx.Delete(s.pools.Journal, key)
	}

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		s.log.Errorf("prune: vault: %s  commit error: %s", vaultAccount, err)
		return 0, err
	}

	s.log.Infof("prune: vault: %s  before: %d  removed: %d", vaultAccount, before, len(keys))
	return len(keys), nil
}

// stops the journal walk of Prune
var errPruneLimit = fault.ProcessError("prune limit reached")

// journal pool element to entry
func decodeJournalElement(vaultKey []byte, e storage.Element) (*Entry, error) {
	if len(e.Key) != len(vaultKey)+8 {
		return nil, fault.ErrJournalEntryLength
	}
	sequence := binary.BigEndian.Uint64(e.Key[len(vaultKey):])
	return UnpackEntry(sequence, e.Value)
}
