// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tunnel

import (
	"sync"

	"github.com/tunspace/splitroute/intra/ipr"
)

// Sink is a no-op Installer that records the last installed table.
// It stands in for the platform until real glue registers itself, and
// backs tests.
type Sink struct {
	mu       sync.Mutex
	up       bool
	included []ipr.Range
	excluded []ipr.Range
}

var _ Installer = (*Sink)(nil)

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) SetRoutes(included, excluded []ipr.Range) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.included = append([]ipr.Range(nil), included...)
	s.excluded = append([]ipr.Range(nil), excluded...)
	s.up = true
	return nil
}

func (s *Sink) IsUp() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.up
}

func (s *Sink) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.up = false
	s.included = nil
	s.excluded = nil
}

// Included returns the last installed tunneled routes.
func (s *Sink) Included() []ipr.Range {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]ipr.Range(nil), s.included...)
}

// Excluded returns the last installed local-interface routes.
func (s *Sink) Excluded() []ipr.Range {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]ipr.Range(nil), s.excluded...)
}
