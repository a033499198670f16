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
)

func TestRouteTreeMatch(t *testing.T) {
	tr := NewRouteTree()
	require.NoError(t, tr.Set("192.168.0.0/16", RouteLocal))
	require.NoError(t, tr.Set("192.168.1.53/32", RouteTun))
	require.NoError(t, tr.Set("0.0.0.0/8", RouteLocal))
	require.NoError(t, tr.Set("::/0", RouteTun))
	require.NoError(t, tr.Set("fe80::/10", RouteLocal))

	tests := []struct {
		q     string
		route string
		v     string
	}{
		{"192.168.1.53", "192.168.1.53/32", RouteTun}, // longest prefix wins
		{"192.168.1.54", "192.168.0.0/16", RouteLocal},
		{"192.168.200.7", "192.168.0.0/16", RouteLocal},
		{"0.1.2.3", "0.0.0.0/8", RouteLocal},
		{"2001:db8::1", "::/0", RouteTun},
		{"fe80::1", "fe80::/10", RouteLocal},
	}
	for _, tt := range tests {
		route, v, err := tr.Match(tt.q)
		require.NoError(t, err, tt.q)
		assert.Equal(t, tt.route, route, tt.q)
		assert.Equal(t, tt.v, v, tt.q)
	}

	// no route at all
	route, v, err := tr.Match("10.1.2.3")
	require.NoError(t, err)
	assert.Empty(t, route)
	assert.Empty(t, v)
}

func TestRouteTreeExactHas(t *testing.T) {
	tr := NewRouteTree()
	require.NoError(t, tr.Set("10.0.0.0/8", RouteTun))

	ok, err := tr.Has("10.0.0.0/8")
	require.NoError(t, err)
	assert.True(t, ok)

	// covered is not exact
	ok, err = tr.Has("10.1.0.0/16")
	require.NoError(t, err)
	assert.False(t, ok)

	v, err := tr.Get("10.0.0.0/8")
	require.NoError(t, err)
	assert.Equal(t, RouteTun, v)
}

func TestRouteTreeRoutes(t *testing.T) {
	tr := NewRouteTree()
	require.NoError(t, tr.Set("10.0.0.0/8", RouteTun))
	require.NoError(t, tr.Set("10.64.0.0/10", RouteTun))

	got := tr.Routes("10.64.0.1")
	assert.Equal(t, 2, len(strings.Split(got, Vsep)), got)
}

func TestRouteTreeDelClearLen(t *testing.T) {
	tr := NewRouteTree()
	require.NoError(t, tr.Set("10.0.0.0/8", RouteTun))
	require.NoError(t, tr.Set("fe80::/10", RouteLocal))
	assert.Equal(t, 2, tr.Len())

	assert.True(t, tr.Del("10.0.0.0/8"))
	assert.False(t, tr.Del("10.0.0.0/8"))
	assert.Equal(t, 1, tr.Len())

	tr.Clear()
	assert.Equal(t, 0, tr.Len())
}

func TestRouteTreeBadInput(t *testing.T) {
	tr := NewRouteTree()
	assert.Error(t, tr.Set("not-a-cidr", RouteTun))
	assert.False(t, tr.Del("not-a-cidr"))
	_, _, err := tr.Match("not-an-ip")
	assert.Error(t, err)
}
