// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package stats

import (
	"github.com/tomtom215/podium/internal/models"
)

// partition maps each key to its row indices and remembers first-seen key order.
type partition[K comparable] struct {
	order  []K
	groups map[K][]int
}

// filter returns the indices of rows matching keep, in row order.
func filter(rows []models.RaceResult, keep func(r *models.RaceResult) bool) []int {
	var idx []int
	for i := range rows {
		if keep(&rows[i]) {
			idx = append(idx, i)
		}
	}
	return idx
}

// partitionBy groups the given row indices by key.
func partitionBy[K comparable](rows []models.RaceResult, idx []int, key func(r *models.RaceResult) K) partition[K] {
	p := partition[K]{groups: make(map[K][]int)}
	for _, i := range idx {
		k := key(&rows[i])
		if _, exists := p.groups[k]; !exists {
			p.order = append(p.order, k)
		}
		p.groups[k] = append(p.groups[k], i)
	}
	return p
}

// each visits groups in first-seen order.
func (p partition[K]) each(fn func(key K, idx []int)) {
	for _, k := range p.order {
		fn(k, p.groups[k])
	}
}

// Len returns the number of groups.
func (p partition[K]) Len() int {
	return len(p.order)
}

func byGPName(r *models.RaceResult) string { return r.GPName }

func byYear(r *models.RaceResult) int { return r.Year }
