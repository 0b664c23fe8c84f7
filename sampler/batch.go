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

package sampler

import (
	"github.com/SHshenhao/InternEvo/internal/data"
)

// BatchSampler groups a worker's index stream into micro-batches for the data
// loader.
type BatchSampler struct {
	single         *IndexSampler
	microBatchSize int
	numBatches     int
}

// NewBatchSampler creates a new batch sampler for the given worker with the
// given arguments.
func NewBatchSampler(dataset data.Dataset, worldSize, rank int, config Config) (*BatchSampler, error) {
	single, err := NewIndexSampler(dataset, worldSize, rank, config)
	if err != nil {
		return nil, err
	}
	return &BatchSampler{
		single:         single,
		microBatchSize: config.MicroBatchSize,
		numBatches:     single.Len() / config.MicroBatchSize,
	}, nil
}

// Batches returns the worker's remaining micro-batches for the current epoch,
// each holding exactly the micro batch size of indices.  A resume offset
// shortens the result below Len.
func (s *BatchSampler) Batches() [][]int {
	return chunk(s.single.Indices(), s.microBatchSize)
}

// Len returns the number of micro-batches per epoch, not counting any resume
// offset.
func (s *BatchSampler) Len() int {
	return s.numBatches
}

// SetEpoch advances the underlying index sampler to the given epoch and
// resume offset.
func (s *BatchSampler) SetEpoch(epoch, startIter int) {
	s.single.SetEpoch(epoch, startIter)
}

// Copy returns a fully independent copy of the batch sampler for
// checkpointing or forking.
func (s *BatchSampler) Copy() *BatchSampler {
	return &BatchSampler{
		single:         s.single.Copy(),
		microBatchSize: s.microBatchSize,
		numBatches:     s.numBatches,
	}
}

// State is the checkpoint snapshot any sampler used interchangeably by the
// training loop must be able to produce and restore.
type State struct {
	BatchCount                int
	NumConsumedSamplesInEpoch int
}

// SequentialSampler partitions a dataset into contiguous, non-randomized
// micro-batches.  It is the fallback for runs that need none of the grouping
// semantics, and defines the minimal snapshot contract via StateDict and
// LoadStateDict.
type SequentialSampler struct {
	dataset  data.Dataset
	microNum int

	batchCount                int
	numConsumedSamplesInEpoch int
}

// NewSequentialSampler creates a new sequential sampler with the given
// arguments.
func NewSequentialSampler(dataset data.Dataset, microNum int) *SequentialSampler {
	return &SequentialSampler{
		dataset:  dataset,
		microNum: microNum,
	}
}

// Batches returns the epoch's contiguous micro-batches in order, advancing
// the persistent consumption counters.  The final micro-batch may be short.
func (s *SequentialSampler) Batches() [][]int {
	numSamples := s.dataset.Len()
	batches := make([][]int, 0, s.Len())
	for start := 0; start < numSamples; start += s.microNum {
		end := min(start+s.microNum, numSamples)
		batch := make([]int, 0, end-start)
		for index := start; index < end; index++ {
			batch = append(batch, index)
		}
		s.batchCount++
		s.numConsumedSamplesInEpoch += end - start
		batches = append(batches, batch)
	}
	return batches
}

// Len returns the number of micro-batches per epoch.
func (s *SequentialSampler) Len() int {
	return (s.dataset.Len() + s.microNum - 1) / s.microNum
}

// StateDict snapshots the consumption counters.
func (s *SequentialSampler) StateDict() State {
	return State{
		BatchCount:                s.batchCount,
		NumConsumedSamplesInEpoch: s.numConsumedSamplesInEpoch,
	}
}

// LoadStateDict restores the consumption counters from a snapshot.
func (s *SequentialSampler) LoadStateDict(state State) {
	s.batchCount = state.BatchCount
	s.numConsumedSamplesInEpoch = state.NumConsumedSamplesInEpoch
}

// Copy returns a fully independent copy of the sampler, including its
// consumption counters.
func (s *SequentialSampler) Copy() *SequentialSampler {
	clone := NewSequentialSampler(s.dataset, s.microNum)
	clone.LoadStateDict(s.StateDict())
	return clone
}
