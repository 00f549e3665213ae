package partition

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

var (
	// Overridden in tests.
	getHostname = os.Hostname
	lookupSRV   = net.LookupSRV

	// ErrNoPartitionDataAvailableYet is returned by the SRV-aware partition
	// detector while the SRV records of the application are not yet
	// published. Records may lag behind the rollout of a stateful set.
	ErrNoPartitionDataAvailableYet = errors.New("no partition data available yet")
)

// Detector is implemented by types that can tell which partition of the
// application cluster the current instance is assigned to.
type Detector interface {
	// PartitionInfo returns the partition assigned to this instance and
	// the total number of partitions.
	PartitionInfo() (int, int, error)
}

// SRVRecord detects the number of partitions by performing an SRV query and
// counting the number of results.
type SRVRecord struct {
	srvName string
}

// DetectFromSRVRecords returns a Detector that extracts the partition
// number from the trailing "-<index>" of the host name and the number of
// partitions from the SRV records of srvName. It is meant to be used with a
// kubernetes stateful set and its headless service.
func DetectFromSRVRecords(srvName string) SRVRecord {
	return SRVRecord{srvName: srvName}
}

// PartitionInfo implements Detector.
func (det SRVRecord) PartitionInfo() (int, int, error) {
	hostname, err := getHostname()
	if err != nil {
		return -1, -1, fmt.Errorf("partition detector: unable to detect host name: %w", err)
	}

	tokens := strings.Split(hostname, "-")
	partition, err := strconv.ParseInt(tokens[len(tokens)-1], 10, 32)
	if err != nil {
		return -1, -1, errors.New("partition detector: unable to extract partition number from host name suffix")
	}

	_, addrs, err := lookupSRV("", "", det.srvName)
	if err != nil {
		return -1, -1, ErrNoPartitionDataAvailableYet
	}

	return int(partition), len(addrs), nil
}

// Fixed is a Detector that always reports the same partition assignment.
// It is used when running a single instance and in tests.
type Fixed struct {
	Partition       int
	NumOfPartitions int
}

// PartitionInfo implements Detector.
func (det Fixed) PartitionInfo() (int, int, error) {
	return det.Partition, det.NumOfPartitions, nil
}

// FromMode returns the Detector described by mode. Supported modes are
// "single" and "dns=<srv name>".
func FromMode(mode string) (Detector, error) {
	switch {
	case mode == "single":
		return Fixed{Partition: 0, NumOfPartitions: 1}, nil
	case strings.HasPrefix(mode, "dns="):
		srvName := strings.TrimPrefix(mode, "dns=")
		if srvName == "" {
			return nil, errors.New("partition detector: missing SRV name")
		}

		return DetectFromSRVRecords(srvName), nil
	default:
		return nil, fmt.Errorf("partition detector: unsupported detection mode %q", mode)
	}
}
