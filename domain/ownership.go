package domain

import "fmt"

// OwnershipConfig describes the key-ownership table: how many members own each key (primary + backups)
// and how the consistent-hash partition table is laid out.
type OwnershipConfig struct {
	// Owners is the number of owners returned per key, primary first.
	Owners int
	// PartitionCount is the number of partitions keys are hashed into. Prime numbers distribute best.
	PartitionCount int
	// VirtualNodes is the number of points each member occupies on the hash ring.
	VirtualNodes int
	// Load bounds the partitions per member to Load times the average.
	Load float64
}

// DefaultOwnershipConfig returns two owners over 271 partitions, 20 virtual nodes and 1.25 load.
func DefaultOwnershipConfig() OwnershipConfig {
	return OwnershipConfig{
		Owners:         2,
		PartitionCount: 271,
		VirtualNodes:   20,
		Load:           1.25,
	}
}

// ValidateOwnershipConfig returns an error describing the first invalid field.
func ValidateOwnershipConfig(cfg OwnershipConfig) error {
	if cfg.Owners < 1 {
		return fmt.Errorf("ownership.owners must be at least 1, got %d", cfg.Owners)
	}
	if cfg.PartitionCount < 1 {
		return fmt.Errorf("ownership.partition_count must be at least 1, got %d", cfg.PartitionCount)
	}
	if cfg.VirtualNodes < 1 {
		return fmt.Errorf("ownership.virtual_nodes must be at least 1, got %d", cfg.VirtualNodes)
	}
	if cfg.Load <= 1 {
		return fmt.Errorf("ownership.load must be greater than 1, got %v", cfg.Load)
	}
	return nil
}
