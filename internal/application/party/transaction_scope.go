package party

import (
	"context"

	"github.com/partysvc/backend/internal/domain/party"
)

// TransactionScope provides transactional access to party repositories.
// When a function is executed within a transaction scope, all repository operations
// will be part of the same database transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all party repositories within a transaction.
// All repositories returned share the same underlying database transaction.
//
// Aggregate boundary notes:
//   - PartyRepo: Repository for the Party aggregate root.
//   - AddressRepo: Addresses are content-addressed shared rows, not children of
//     a party. They are looked up by fingerprint and created at most once per
//     distinct content, so they get independent repository access.
//   - HistoryRepo: Append-only repository for party history snapshots.
type TransactionalRepositories interface {
	// PartyRepo returns the party repository scoped to the current transaction
	PartyRepo() party.PartyRepository
	// AddressRepo returns the address repository scoped to the current transaction
	AddressRepo() party.AddressRepository
	// HistoryRepo returns the party history repository scoped to the current transaction
	HistoryRepo() party.PartyHistoryRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	partyRepo   party.PartyRepository
	addressRepo party.AddressRepository
	historyRepo party.PartyHistoryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	partyRepo party.PartyRepository,
	addressRepo party.AddressRepository,
	historyRepo party.PartyHistoryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		partyRepo:   partyRepo,
		addressRepo: addressRepo,
		historyRepo: historyRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PartyRepo returns the party repository.
func (s *NoOpTransactionScope) PartyRepo() party.PartyRepository {
	return s.partyRepo
}

// AddressRepo returns the address repository.
func (s *NoOpTransactionScope) AddressRepo() party.AddressRepository {
	return s.addressRepo
}

// HistoryRepo returns the party history repository.
func (s *NoOpTransactionScope) HistoryRepo() party.PartyHistoryRepository {
	return s.historyRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
