// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freightmatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each handler depends on the narrowest composition that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LoadRepoFactory provides access to the load repository within a transaction.
	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	// MatchRepoFactory provides access to the match repository within a transaction.
	MatchRepoFactory interface {
		MatchRepository() ports.MatchRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// LoadUoW manages transactions for load-only operations.
	// Used when commands only modify load aggregates.
	LoadUoW interface {
		TxManager
		LoadRepoFactory
	}

	// LoadUoWFactory creates new load unit of work instances.
	LoadUoWFactory interface {
		Create() LoadUoW
	}

	// MatchUoW manages transactions for match-only operations.
	// Used when commands only modify match aggregates.
	MatchUoW interface {
		TxManager
		MatchRepoFactory
	}

	// MatchUoWFactory creates new match unit of work instances.
	MatchUoWFactory interface {
		Create() MatchUoW
	}

	// LoadMatchUoW manages transactions spanning load and match aggregates.
	// Used by candidate search, offers, and the load expiry sweep.
	LoadMatchUoW interface {
		TxManager
		LoadRepoFactory
		MatchRepoFactory
	}

	// LoadMatchUoWFactory creates new load+match unit of work instances.
	LoadMatchUoWFactory interface {
		Create() LoadMatchUoW
	}

	// ShipmentLoadUoW manages transactions spanning shipment and load
	// aggregates. Used by tracking ingestion, where milestone events drive
	// the paired load through its lifecycle.
	ShipmentLoadUoW interface {
		TxManager
		ShipmentRepoFactory
		LoadRepoFactory
	}

	// ShipmentLoadUoWFactory creates new shipment+load unit of work instances.
	ShipmentLoadUoWFactory interface {
		Create() ShipmentLoadUoW
	}

	// UoW manages transactions across load, match, and shipment aggregates.
	// The acceptance cascade runs entirely inside one of these.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   loadRepo := uow.LoadRepository()
	//   matchRepo := uow.MatchRepository()
	//   shipmentRepo := uow.ShipmentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		LoadRepoFactory
		MatchRepoFactory
		ShipmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
