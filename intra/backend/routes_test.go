// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package backend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunspace/splitroute/tunnel/settings"
)

func TestResolveRoutesCSV(t *testing.T) {
	rt := ResolveRoutes("1.1.1.1, 1.0.0.1", true)

	inc := strings.Split(rt.Included(), Vsep)
	assert.Contains(t, inc, "1.1.1.1/32")
	assert.Contains(t, inc, "1.0.0.1/32")
	assert.Contains(t, inc, "1.0.0.0/8")
	assert.Contains(t, inc, "::/0")

	exc := strings.Split(rt.Excluded(), Vsep)
	assert.Contains(t, exc, "127.0.0.0/8")
	assert.Contains(t, exc, "192.168.0.0/16")
	assert.NotContains(t, exc, "10.0.0.0/8")
}

func TestResolveRoutesDropsMalformedDNS(t *testing.T) {
	rt := ResolveRoutes("8.8.8.8,not-an-ip,,256.1.1.1", false)

	inc := strings.Split(rt.Included(), Vsep)
	assert.Contains(t, inc, "8.8.8.8/32")
	// one host route survives; the junk never aborts resolution
	hostRoutes := 0
	for _, s := range inc {
		if strings.HasSuffix(s, "/32") || strings.HasSuffix(s, "/128") {
			hostRoutes++
		}
	}
	assert.Equal(t, 1, hostRoutes)
}

func TestDecide(t *testing.T) {
	rt := ResolveRoutes("192.168.1.53", true)

	tests := []struct {
		ip   string
		want string
	}{
		{"8.8.8.8", RouteTun},         // public
		{"127.0.0.1", RouteLocal},     // loopback
		{"169.254.10.10", RouteLocal}, // link-local
		{"192.168.1.53", RouteTun},    // dns host route beats exclusion
		{"192.168.1.54", RouteLocal},  // rest of the excluded block
		{"172.20.1.2", RouteLocal},    // rfc1918, excluded
		{"2600::1", RouteTun},         // v6 default route
		{"fe80::1", RouteLocal},       // v6 link-local beats ::/0
		{"10.1.2.3", ""},              // 10/8: no route either way
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rt.Decide(tt.ip), tt.ip)
	}

	assert.Empty(t, rt.Decide("not-an-ip"))
}

func TestDecideLocalNetworksTunneled(t *testing.T) {
	rt := ResolveRoutes("", false)

	assert.Equal(t, RouteTun, rt.Decide("10.1.2.3"))
	assert.Equal(t, RouteTun, rt.Decide("192.168.1.54"))
	assert.Equal(t, RouteLocal, rt.Decide("127.0.0.1"))
}

func TestResolvePolicy(t *testing.T) {
	p := settings.NewRoutePolicy([]string{"9.9.9.9"}, true)
	p.AddDNS("149.112.112.112")

	rt := ResolvePolicy(p)
	require.NotNil(t, rt)

	inc := strings.Split(rt.Included(), Vsep)
	assert.Contains(t, inc, "9.9.9.9/32")
	assert.Contains(t, inc, "149.112.112.112/32")

	// nil policy falls back to defaults: no dns, locals tunneled
	rt = ResolvePolicy(nil)
	assert.Equal(t, RouteTun, rt.Decide("192.168.1.1"))
}
