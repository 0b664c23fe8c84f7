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

// Package sampler provides primitives for assigning dataset indices to
// data-parallel training workers. Every worker recomputes the identical
// per-epoch global permutation from a shared seed and slices out its own
// share, so no communication between workers is required. Each micro-batch
// contains samples from a single task group unless mixing is explicitly
// allowed.
package sampler

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/SHshenhao/InternEvo/internal/data"
	"github.com/golang/glog"
)

// clusterFactor scales the global batch size up to the block length used for
// length clustering; shuffling happens only within a block, which bounds the
// length variance inside each micro-batch cut from it.
const clusterFactor = 500

// Config holds the sampling parameters shared by every worker.  All workers
// must be constructed with identical values or their partitions silently
// desynchronize.
type Config struct {
	// MicroBatchSize is the number of samples per forward/backward step on
	// one worker.  Required.
	MicroBatchSize int

	// AccGrad is the number of micro-batches accumulated before an
	// optimizer step.  Required.
	AccGrad int

	// Shuffle must be true; non-shuffled iteration is unsupported.
	Shuffle bool

	// Seed is the base seed shared by all workers.  The per-epoch
	// generator is seeded with Seed+epoch.
	Seed int64

	// LengthClustering coarsely sorts each group by sample length before
	// shuffling within fixed-size blocks, reducing padding waste.
	LengthClustering bool

	// AllowMixedTaskAmongAcc pools micro-batches across groups when
	// shuffling, so different tasks may co-occur within one accumulation
	// window.  Micro-batches themselves stay homogeneous either way.
	AllowMixedTaskAmongAcc bool
}

// DefaultConfig returns the default sampling parameters.
func DefaultConfig() Config {
	return Config{
		Shuffle:          true,
		LengthClustering: true,
	}
}

// IndexSampler produces, for one worker, the per-epoch sequence of dataset
// indices.  The sequence is a pure function of the seed, the epoch and the
// dataset metadata; requesting it again recomputes the permutation from
// scratch.
type IndexSampler struct {
	dataset   data.Dataset
	config    Config
	worldSize int
	rank      int

	epoch     int
	startIter int

	totalSize  int
	numSamples int
}

// NewIndexSampler creates a new index sampler for the given worker with the
// given arguments.
func NewIndexSampler(dataset data.Dataset, worldSize, rank int, config Config) (*IndexSampler, error) {
	if config.MicroBatchSize <= 0 {
		return nil, fmt.Errorf("sampler: non-positive micro batch size %d", config.MicroBatchSize)
	}
	if config.AccGrad <= 0 {
		return nil, fmt.Errorf("sampler: non-positive accumulation steps %d", config.AccGrad)
	}
	if !config.Shuffle {
		return nil, errors.New("sampler: non-shuffled iteration is not supported")
	}
	if rank < 0 || worldSize <= rank {
		return nil, fmt.Errorf("sampler: invalid rank %d for world size %d", rank, worldSize)
	}

	_, _, totalSize, err := data.GroupLens(dataset.MetaList(), config.MicroBatchSize, worldSize, config.AccGrad)
	if err != nil {
		return nil, err
	}

	return &IndexSampler{
		dataset:    dataset,
		config:     config,
		worldSize:  worldSize,
		rank:       rank,
		totalSize:  totalSize,
		numSamples: totalSize / worldSize,
	}, nil
}

// Len returns the number of indices assigned to this worker per epoch.
func (s *IndexSampler) Len() int {
	return s.numSamples
}

// TotalSize returns the number of usable indices across all workers per epoch.
func (s *IndexSampler) TotalSize() int {
	return s.totalSize
}

// SetEpoch advances the sampler to the given epoch, skipping the first
// startIter micro-batches of the worker's share.  This is the only way to
// mutate the session state; it is called once per epoch boundary or once when
// resuming from a checkpoint.
func (s *IndexSampler) SetEpoch(epoch, startIter int) {
	if epoch < 0 || startIter < 0 {
		panic(fmt.Sprintf("sampler: negative epoch %d or start iteration %d", epoch, startIter))
	}
	s.epoch = epoch
	s.startIter = startIter
}

// Copy returns a fully independent copy of the sampler.  The dataset
// collaborator is shared since it is read-only by contract; all session state
// is copied by value.
func (s *IndexSampler) Copy() *IndexSampler {
	clone := *s
	return &clone
}

// Indices recomputes the global per-epoch permutation and returns this
// worker's share, trimmed by the resume offset.  The result is identical
// across calls until SetEpoch is invoked.
func (s *IndexSampler) Indices() []int {
	indices := s.permutation()
	own := partitionForRank(indices, s.rank, s.worldSize, s.config.MicroBatchSize)
	if len(own) != s.numSamples {
		panic(fmt.Sprintf("sampler: rank %d share has %d indices, want %d", s.rank, len(own), s.numSamples))
	}
	return trimConsumed(own, s.startIter, s.config.MicroBatchSize)
}

// pair couples a global sample index with its length.
type pair struct {
	index  int
	length int
}

// permutation builds the global flat index sequence for the current epoch.
// Every worker runs this identically; determinism of the seeded generator is
// the correctness precondition of the no-communication partitioning.
func (s *IndexSampler) permutation() []int {
	rng := rand.New(rand.NewSource(s.config.Seed + int64(s.epoch)))
	globalBatchSize := s.config.MicroBatchSize * s.worldSize
	align := globalBatchSize * s.config.AccGrad

	// Pool the (index, length) pairs of each partition into its group,
	// in meta list order, subsampling partitions with a ratio.
	var labels []string
	groups := make(map[string][]pair)
	base := 0
	for i, meta := range s.dataset.MetaList() {
		pairs := make([]pair, meta.Len)
		for j := range pairs {
			pairs[j] = pair{index: base + j, length: meta.ItemLenList[j]}
		}
		base += meta.Len

		if retain := meta.Weight(); retain != meta.Len {
			pairs = subsample(rng, pairs, retain)
			glog.V(1).Infof("meta %d: sampled %d items with ratio %g", i, len(pairs), meta.Ratio)
		}

		if _, ok := groups[meta.Type]; !ok {
			labels = append(labels, meta.Type)
		}
		groups[meta.Type] = append(groups[meta.Type], pairs...)
	}

	// Align each group down to a whole number of accumulation units;
	// the remainder is dropped.
	for _, label := range labels {
		pairs := groups[label]
		groups[label] = pairs[:len(pairs)/align*align]
	}

	// Order each group, either by length clustering or by a full shuffle,
	// and discard the lengths.
	indices := make(map[string][]int, len(labels))
	for _, label := range labels {
		if s.config.LengthClustering {
			indices[label] = clusterShuffle(rng, groups[label], globalBatchSize*clusterFactor)
		} else {
			pairs := groups[label]
			rng.Shuffle(len(pairs), func(i, j int) {
				pairs[i], pairs[j] = pairs[j], pairs[i]
			})
			indices[label] = strip(pairs)
		}
	}

	// Cut each group into micro-batches spanning all workers, gather them
	// into accumulation units, and shuffle.
	var batches [][]int
	if s.config.AllowMixedTaskAmongAcc {
		for _, label := range labels {
			batches = append(batches, chunk(indices[label], globalBatchSize)...)
		}
	} else {
		for _, label := range labels {
			group := chunk(indices[label], globalBatchSize)
			rng.Shuffle(len(group), func(i, j int) {
				group[i], group[j] = group[j], group[i]
			})
			if len(group)%s.config.AccGrad != 0 {
				panic(fmt.Sprintf("sampler: group %q has %d micro-batches, not a multiple of %d accumulation steps", label, len(group), s.config.AccGrad))
			}
			for i := 0; i < len(group); i += s.config.AccGrad {
				unit := make([]int, 0, align)
				for _, batch := range group[i : i+s.config.AccGrad] {
					unit = append(unit, batch...)
				}
				batches = append(batches, unit)
			}
		}
	}
	rng.Shuffle(len(batches), func(i, j int) {
		batches[i], batches[j] = batches[j], batches[i]
	})

	flat := make([]int, 0, s.totalSize)
	for _, batch := range batches {
		flat = append(flat, batch...)
	}
	if len(flat) != s.totalSize {
		panic(fmt.Sprintf("sampler: flattened %d indices, want %d", len(flat), s.totalSize))
	}
	return flat
}

// subsample selects k pairs without replacement using the epoch generator.
func subsample(rng *rand.Rand, pairs []pair, k int) []pair {
	out := make([]pair, 0, k)
	for _, position := range rng.Perm(len(pairs))[:k] {
		out = append(out, pairs[position])
	}
	return out
}

// clusterShuffle sorts the pairs by length ascending, then independently
// shuffles the contents of each contiguous block of blockSize positions,
// keeping the blocks themselves in order.  Micro-batches cut from the result
// draw from a bounded length range while the order within a block stays
// random.
func clusterShuffle(rng *rand.Rand, pairs []pair, blockSize int) []int {
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].length < pairs[j].length
	})
	indices := strip(pairs)

	for base := 0; base < len(indices); base += blockSize {
		block := indices[base:min(base+blockSize, len(indices))]
		rng.Shuffle(len(block), func(i, j int) {
			block[i], block[j] = block[j], block[i]
		})
	}
	return indices
}

// strip discards the lengths, retaining the index order.
func strip(pairs []pair) []int {
	indices := make([]int, len(pairs))
	for i, p := range pairs {
		indices[i] = p.index
	}
	return indices
}

// chunk cuts the indices into consecutive runs of size.  The caller
// guarantees divisibility.
func chunk(indices []int, size int) [][]int {
	out := make([][]int, 0, len(indices)/size)
	for base := 0; base < len(indices); base += size {
		out = append(out, indices[base:base+size])
	}
	return out
}

// partitionForRank extracts the given rank's share of the global sequence by
// fixed-stride slicing: starting at rank*microBatchSize, take microBatchSize
// contiguous indices, then advance by worldSize*microBatchSize.  The shares
// of all ranks partition the sequence with no overlap and no gaps.
func partitionForRank(indices []int, rank, worldSize, microBatchSize int) []int {
	own := make([]int, 0, len(indices)/worldSize)
	for base := rank * microBatchSize; base < len(indices); base += worldSize * microBatchSize {
		own = append(own, indices[base:base+microBatchSize]...)
	}
	return own
}

// trimConsumed drops the first startIter micro-batches of the share.  A skip
// past the end of the share leaves the epoch's remaining work empty rather
// than failing, so a stale resume offset degrades gracefully.
func trimConsumed(own []int, startIter, microBatchSize int) []int {
	if consumed := startIter * microBatchSize; consumed < len(own) {
		return own[consumed:]
	}
	return nil
}
