// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package routes

import (
	"net/netip"

	"go4.org/netipx"

	"github.com/tunspace/splitroute/intra/ipr"
)

// A Conflict is one included range overlapping one excluded range.
type Conflict struct {
	Included ipr.Range
	Excluded ipr.Range
}

// FindConflicts returns every included/excluded pair that overlaps, in
// list order. It reports intended conflicts too (a DNS host route
// inside a broader excluded range, the IPv6 default route over the v6
// system ranges); callers partition before asserting. Diagnostic use.
func FindConflicts(included, excluded []ipr.Range) []Conflict {
	var out []Conflict
	for _, in := range included {
		for _, ex := range excluded {
			if in.Overlaps(ex) {
				out = append(out, Conflict{Included: in, Excluded: ex})
			}
		}
	}
	return out
}

// UnexpectedConflicts filters FindConflicts down to the pairs that
// indicate a genuine catalog bug. Two conflict classes are expected
// and dropped: a host route (/32, /128) over a broader excluded range,
// where the more specific route wins at the OS routing layer, and the
// IPv6 default route over a narrower excluded v6 range, for the same
// reason. Anything broad-on-broad remaining is a defect.
func UnexpectedConflicts(included, excluded []ipr.Range) []Conflict {
	all := FindConflicts(included, excluded)
	out := all[:0]
	for _, c := range all {
		if c.Included.IsHost() {
			continue
		}
		if c.Included == IPv6DefaultRoute && c.Excluded.Bits() > 0 {
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FindPublicInternetGaps returns the portions of the full v4+v6
// address space covered by none of public, system, or private — the
// coverage holes of the public catalog. A correct catalog yields nil.
func FindPublicInternetGaps(public, system, private []ipr.Range) []ipr.Range {
	var b netipx.IPSetBuilder
	b.AddPrefix(netip.MustParsePrefix("0.0.0.0/0"))
	b.AddPrefix(netip.MustParsePrefix("::/0"))
	for _, r := range system {
		b.RemovePrefix(r.Prefix())
	}
	for _, r := range private {
		b.RemovePrefix(r.Prefix())
	}
	for _, r := range public {
		b.RemovePrefix(r.Prefix())
	}
	set, err := b.IPSet()
	if err != nil {
		// only reachable with an invalid catalog range
		return []ipr.Range{ipr.MustParse("0.0.0.0/0")}
	}

	var gaps []ipr.Range
	for _, p := range set.Prefixes() {
		r, err := ipr.From(p.Addr(), p.Bits())
		if err != nil {
			continue
		}
		gaps = append(gaps, r)
	}
	return gaps
}
