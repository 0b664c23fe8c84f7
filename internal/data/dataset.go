// Copyright 2024 InternEvo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package data provides primitives for representing the given dataset as an
// ordered collection of task partitions. Partitions sharing a task label form
// a group; the sampler keeps each micro-batch within a single group.
package data

import (
	"fmt"
	"math"
)

// GroupMeta describes a single dataset partition.  The position of the
// partition in the dataset's meta list defines its range in the global index
// space: a partition starting after n preceding samples covers the indices
// [n, n+Len).
type GroupMeta struct {
	// Type is the task label used as the grouping key.  It need not be
	// unique across the meta list; partitions sharing a label are pooled
	// into one group.
	Type string

	// Len is the number of samples in the partition.
	Len int

	// ItemLenList holds the per-sample lengths, in sample order.  It is
	// used only for length clustering.
	ItemLenList []int

	// Ratio is the fraction of the partition to retain via subsampling
	// without replacement.  The zero value means keep everything.
	Ratio float64
}

// Validate checks the integrity of the partition metadata.
func (m GroupMeta) Validate() error {
	if m.Type == "" {
		return fmt.Errorf("data: partition has empty type")
	}
	if m.Len <= 0 {
		return fmt.Errorf("data: partition %q has non-positive length %d", m.Type, m.Len)
	}
	if len(m.ItemLenList) != m.Len {
		return fmt.Errorf("data: partition %q has %d item lengths for %d samples", m.Type, len(m.ItemLenList), m.Len)
	}
	if m.Ratio < 0 || 1 < m.Ratio {
		return fmt.Errorf("data: partition %q has ratio %g out of range (0, 1]", m.Type, m.Ratio)
	}
	return nil
}

// Weight returns the ratio-applied sample count of the partition.
func (m GroupMeta) Weight() int {
	if m.Ratio == 0 || m.Ratio == 1 {
		return m.Len
	}
	return int(math.Round(float64(m.Len) * m.Ratio))
}

// Dataset represents the given dataset.  It is read-only from the sampler's
// perspective.
type Dataset interface {
	// Len returns the total number of data samples in the dataset.
	Len() int

	// MetaList returns the ordered partition metadata.  The order defines
	// the global index space and must be identical on every worker.
	MetaList() []GroupMeta
}

// GroupDataset is an in-memory dataset built from partition metadata.
type GroupDataset struct {
	metaList []GroupMeta
	size     int
}

// NewGroupDataset creates a new dataset with the given partition metadata.
func NewGroupDataset(metaList []GroupMeta) (*GroupDataset, error) {
	if len(metaList) == 0 {
		return nil, fmt.Errorf("data: empty meta list")
	}

	size := 0
	for _, meta := range metaList {
		if err := meta.Validate(); err != nil {
			return nil, err
		}
		size += meta.Len
	}

	return &GroupDataset{
		metaList: metaList,
		size:     size,
	}, nil
}

// Len returns the total number of data samples in the dataset.
func (d *GroupDataset) Len() int {
	return d.size
}

// MetaList returns the ordered partition metadata.
func (d *GroupDataset) MetaList() []GroupMeta {
	return d.metaList
}

// GroupLens aggregates, for each group label, the usable sample count: the
// ratio-applied sums of all partitions sharing the label, aligned down to a
// multiple of microBatchSize*worldSize*accGrad so that every group divides
// evenly into accumulation units across all workers.  The returned labels
// preserve the order of first appearance in the meta list, which every worker
// must traverse identically.  The dropped remainder is a deliberate data-loss
// policy.
func GroupLens(metaList []GroupMeta, microBatchSize, worldSize, accGrad int) (labels []string, lens map[string]int, totalSize int, err error) {
	if microBatchSize <= 0 {
		return nil, nil, 0, fmt.Errorf("data: non-positive micro batch size %d", microBatchSize)
	}
	if worldSize <= 0 {
		return nil, nil, 0, fmt.Errorf("data: non-positive world size %d", worldSize)
	}
	if accGrad <= 0 {
		return nil, nil, 0, fmt.Errorf("data: non-positive accumulation steps %d", accGrad)
	}

	align := microBatchSize * worldSize * accGrad
	lens = make(map[string]int)
	for _, meta := range metaList {
		if _, ok := lens[meta.Type]; !ok {
			labels = append(labels, meta.Type)
		}
		lens[meta.Type] += meta.Weight()
	}

	for _, label := range labels {
		lens[label] = lens[label] / align * align
		totalSize += lens[label]
	}

	if totalSize%worldSize != 0 {
		return nil, nil, 0, fmt.Errorf("data: total size %d is not divisible by world size %d", totalSize, worldSize)
	}

	return labels, lens, totalSize, nil
}
