// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tunnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunspace/splitroute/intra/routes"
)

func TestApplyInstallsResolvedTable(t *testing.T) {
	d, err := routes.ParseDNSServer("1.1.1.1")
	require.NoError(t, err)
	tb := routes.Resolve([]routes.DNSServer{d}, true)

	s := NewSink()
	require.NoError(t, Apply(s, tb))
	assert.True(t, s.IsUp())
	assert.Equal(t, tb.Included, s.Included())
	assert.Equal(t, tb.Excluded, s.Excluded())

	s.Disconnect()
	assert.False(t, s.IsUp())
	assert.Empty(t, s.Included())
}

func TestApplyNilInstaller(t *testing.T) {
	assert.Error(t, Apply(nil, routes.Resolve(nil, false)))
}

func TestReapplyReplacesRoutes(t *testing.T) {
	s := NewSink()

	require.NoError(t, Apply(s, routes.Resolve(nil, false)))
	n := len(s.Included())

	require.NoError(t, Apply(s, routes.Resolve(nil, true)))
	// local networks moved from included to excluded (minus 10/8)
	assert.NotEqual(t, n, len(s.Included()))
}
