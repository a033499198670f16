// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package backend

import (
	"errors"
	"net"
	"net/netip"
	"strings"
	"sync"

	"github.com/k-sone/critbitgo"

	"github.com/tunspace/splitroute/intra/log"
)

// A RouteTree is a thread-safe critbit trie of CIDR routes, each tagged
// with a direction. Longest-prefix matching over the trie mirrors how
// the OS routing layer picks among installed routes, which is what
// makes a DNS host route override a broader excluded range.
type RouteTree interface {
	// Set tags the cidr route with v, overwriting any previous tag.
	Set(cidr, v string) error
	// Del deletes the cidr route. Returns true if cidr was found.
	Del(cidr string) bool
	// Get returns the tag of cidr, or "" if cidr is not a route.
	Get(cidr string) (string, error)
	// Has returns true if cidr is a route (exact match, not merely
	// covered by one).
	Has(cidr string) (bool, error)
	// Match returns the longest route covering ipOrCidr and its tag,
	// or "", "".
	Match(ipOrCidr string) (route, v string, err error)
	// Routes returns csv of all routes covering ipOrCidr.
	Routes(ipOrCidr string) string
	// Clear drops all routes.
	Clear()
	// Len returns the number of routes.
	Len() int
}

type routetree struct {
	sync.RWMutex
	t *critbitgo.Net
}

var errValNotString = errors.New("backend: tag must be string")

func NewRouteTree() RouteTree {
	return &routetree{t: critbitgo.NewNet()}
}

func (c *routetree) Set(cidr string, v string) error {
	r, err := ip2cidr(cidr)
	if err != nil {
		return err
	}

	c.Lock()
	defer c.Unlock()

	return c.t.Add(r, v)
}

func (c *routetree) Del(cidr string) bool {
	r, err := ip2cidr(cidr)
	if err != nil {
		return false
	}

	c.Lock()
	defer c.Unlock()

	_, ok, err := c.t.Delete(r)
	return ok && err == nil
}

func (c *routetree) Get(cidr string) (v string, err error) {
	r, err := ip2cidr(cidr)
	if err != nil {
		return "", err
	}

	c.RLock()
	defer c.RUnlock()

	s, ok, err := c.t.Get(r)
	if !ok || err != nil {
		return "", err // may be nil
	}
	if v, ok = s.(string); !ok {
		return "", errValNotString
	}
	return
}

func (c *routetree) Has(cidr string) (bool, error) {
	r, err := ip2cidr(cidr)
	if err != nil {
		return false, err
	}

	c.RLock()
	defer c.RUnlock()

	_, ok, err := c.t.Get(r)
	return ok, err
}

func (c *routetree) Match(ipOrCidr string) (route, v string, err error) {
	r, err := ip2cidr(ipOrCidr)
	if err != nil {
		return "", "", err
	}

	c.RLock()
	defer c.RUnlock()

	m, val, err := c.t.Match(r)
	if err != nil || m == nil {
		return "", "", err
	}
	route = m.String()
	if s, ok := val.(string); ok {
		v = s
	}
	return
}

func (c *routetree) Routes(ipOrCidr string) string {
	r, err := ip2cidr(ipOrCidr)
	if err != nil {
		return ""
	}

	c.RLock()
	defer c.RUnlock()

	rt := make([]string, 0)
	c.t.WalkMatch(r, func(k *net.IPNet, v any) bool {
		if k != nil {
			rt = append(rt, k.String())
		}
		return true // next
	})
	return strings.Join(rt, Vsep)
}

func (c *routetree) Clear() {
	c.Lock()
	defer c.Unlock()

	c.t.Clear()
}

func (c *routetree) Len() int {
	c.RLock()
	defer c.RUnlock()

	return c.t.Size()
}

// ip2cidr parses either a CIDR or a bare IP (which gets a full-length
// prefix).
func ip2cidr(ipOrCidr string) (ipnet *net.IPNet, err error) {
	var ipaddr netip.Addr
	if _, ipnet, err = net.ParseCIDR(ipOrCidr); err == nil {
		return
	} else if ipaddr, err = netip.ParseAddr(ipOrCidr); err == nil {
		ip := ipaddr.AsSlice()
		mask := net.CIDRMask(ipaddr.BitLen(), ipaddr.BitLen())
		ipnet = &net.IPNet{IP: ip, Mask: mask}
	} else {
		log.W("backend: ip2cidr: %v", err)
	}
	return
}
