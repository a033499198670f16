// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package tunnel holds the boundary to the platform tunnel: the
// interface through which a resolved route table is installed into an
// OS-level tunnel interface. Route computation lives in intra/routes;
// everything past Installer (packet forwarding, interface lifecycle)
// is platform code.
package tunnel

import (
	"errors"

	"github.com/tunspace/splitroute/intra/ipr"
	"github.com/tunspace/splitroute/intra/log"
	"github.com/tunspace/splitroute/intra/routes"
)

var errNoInstaller = errors.New("tun: no installer")

// Installer is the platform API that installs a resolved route table
// into the tunnel interface. The platform routing layer prefers more
// specific routes, which is what lets a /32 or /128 host route in
// included override a broader excluded range.
type Installer interface {
	// SetRoutes replaces the tunnel's route configuration. included
	// is routed through the tunnel, excluded stays on the local
	// interface.
	SetRoutes(included, excluded []ipr.Range) error
	// IsUp reports whether the tunnel interface is active.
	IsUp() bool
	// Disconnect tears the tunnel interface down.
	Disconnect()
}

// Apply installs t into i. Called once per (re)connect.
func Apply(i Installer, t routes.Table) error {
	if i == nil {
		return errNoInstaller
	}
	err := i.SetRoutes(t.Included, t.Excluded)
	log.I("tun: apply: %d included, %d excluded; up? %t, err? %v",
		len(t.Included), len(t.Excluded), i.IsUp(), err)
	return err
}
