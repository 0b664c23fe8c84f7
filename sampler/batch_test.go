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
	"testing"

	"github.com/SHshenhao/InternEvo/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchSampler(t *testing.T) {
	dataset := newTestDataset(t)
	config := testConfig()

	sampler, err := NewBatchSampler(dataset, 2, 0, config)
	require.NoError(t, err)
	assert.Equal(t, 312, sampler.Len())

	single, err := NewIndexSampler(dataset, 2, 0, config)
	require.NoError(t, err)

	batches := sampler.Batches()
	require.Len(t, batches, sampler.Len())

	flat := make([]int, 0, sampler.Len()*config.MicroBatchSize)
	for _, batch := range batches {
		require.Len(t, batch, config.MicroBatchSize)
		flat = append(flat, batch...)
	}
	assert.Equal(t, single.Indices(), flat)
}

func TestBatchSamplerResume(t *testing.T) {
	const startIter = 7
	dataset := newTestDataset(t)

	sampler, err := NewBatchSampler(dataset, 2, 1, testConfig())
	require.NoError(t, err)

	full := sampler.Batches()
	sampler.SetEpoch(0, startIter)
	assert.Equal(t, full[startIter:], sampler.Batches())

	sampler.SetEpoch(0, sampler.Len())
	assert.Empty(t, sampler.Batches())
}

func TestBatchSamplerRejectsInvalidConfig(t *testing.T) {
	dataset := newTestDataset(t)

	config := testConfig()
	config.Shuffle = false
	_, err := NewBatchSampler(dataset, 2, 0, config)
	assert.Error(t, err)

	config = testConfig()
	config.MicroBatchSize = 0
	_, err = NewBatchSampler(dataset, 2, 0, config)
	assert.Error(t, err)
}

func TestBatchSamplerCopy(t *testing.T) {
	dataset := newTestDataset(t)

	sampler, err := NewBatchSampler(dataset, 2, 0, testConfig())
	require.NoError(t, err)
	epoch0 := sampler.Batches()

	clone := sampler.Copy()
	clone.SetEpoch(2, 0)

	assert.Equal(t, epoch0, sampler.Batches())
	assert.NotEqual(t, epoch0, clone.Batches())
	assert.Equal(t, sampler.Len(), clone.Len())
}

func TestSequentialSampler(t *testing.T) {
	const (
		datasetSize = 10
		microNum    = 4
	)
	dataset, err := data.NewGroupDataset([]data.GroupMeta{
		{Type: "text", Len: datasetSize, ItemLenList: make([]int, datasetSize)},
	})
	require.NoError(t, err)

	sampler := NewSequentialSampler(dataset, microNum)
	assert.Equal(t, 3, sampler.Len())

	batches := sampler.Batches()
	require.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9}}, batches)

	state := sampler.StateDict()
	assert.Equal(t, 3, state.BatchCount)
	assert.Equal(t, datasetSize, state.NumConsumedSamplesInEpoch)
}

func TestSequentialSamplerState(t *testing.T) {
	dataset := newTestDataset(t)

	sampler := NewSequentialSampler(dataset, 8)
	sampler.Batches()
	state := sampler.StateDict()

	restored := NewSequentialSampler(dataset, 8)
	restored.LoadStateDict(state)
	assert.Equal(t, state, restored.StateDict())

	clone := sampler.Copy()
	assert.Equal(t, state, clone.StateDict())

	clone.Batches()
	assert.Equal(t, state, sampler.StateDict())
	assert.NotEqual(t, state, clone.StateDict())
}
