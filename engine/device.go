// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
)

// DeviceSlot holds the one rendering device shared by every window of a
// viewer. The slot starts empty and is populated exactly once; after that
// it only hands out the stored device.
//
// The zero value is an empty slot.
type DeviceSlot struct {
	mu       sync.Mutex
	device   gpucontext.DeviceProvider
	released bool
}

// Device returns the stored device, or nil while the slot is empty.
func (s *DeviceSlot) Device() gpucontext.DeviceProvider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.device
}

// Empty reports whether no device has been stored yet.
func (s *DeviceSlot) Empty() bool {
	return s.Device() == nil
}

// Store populates the slot. It fails with ErrDeviceAlreadySet if the slot
// already holds a device.
func (s *DeviceSlot) Store(d gpucontext.DeviceProvider) error {
	if d == nil {
		return ErrNilDevice
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return ErrSlotReleased
	}
	if s.device != nil {
		return ErrDeviceAlreadySet
	}
	s.device = d
	return nil
}

// Acquire returns the stored device, calling create to populate the slot
// first if it is empty. created reports whether create ran and succeeded.
// A failed create leaves the slot empty.
func (s *DeviceSlot) Acquire(create func() (gpucontext.DeviceProvider, error)) (d gpucontext.DeviceProvider, created bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.device != nil {
		return s.device, false, nil
	}
	if s.released {
		return nil, false, ErrSlotReleased
	}

	d, err = create()
	if err != nil {
		return nil, false, fmt.Errorf("create device: %w", err)
	}
	if d == nil {
		return nil, false, ErrNilDevice
	}
	s.device = d
	return d, true, nil
}

// Take empties the slot for good and returns what it held, so the owner can
// release the device on shutdown. Later Store and Acquire calls fail with
// ErrSlotReleased.
func (s *DeviceSlot) Take() gpucontext.DeviceProvider {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.device
	s.device = nil
	s.released = true
	return d
}
