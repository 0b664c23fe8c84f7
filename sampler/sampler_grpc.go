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
	"context"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/SHshenhao/InternEvo/internal/data"
	"github.com/golang/glog"
	"github.com/golang/protobuf/ptypes/empty"
	"golang.org/x/exp/constraints"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// samplerServer implements the server API for Sampler service.  The schedule
// for any rank is a pure function of the seed, the epoch and the dataset
// metadata, so requests need no synchronization across ranks; the server only
// guards its own initialization state.
type samplerServer struct {
	UnimplementedSamplerServer
	mu        sync.RWMutex
	dataset   *data.GroupDataset
	config    Config
	worldSize int
	done      chan<- os.Signal
}

// NewSamplerServer creates a new sampler server.
func NewSamplerServer(done chan<- os.Signal) SamplerServer {
	return &samplerServer{
		done: done,
	}
}

// Init initializes the training environment with the dataset metadata and the
// sampling parameters shared by all workers.
func (s *samplerServer) Init(ctx context.Context, in *Arguments) (*empty.Empty, error) {
	glog.Infof("Init called with world size: %d micro batch size: %d accumulation steps: %d seed: %d", in.GetWorldSize(), in.GetMicroBatchSize(), in.GetAccGrad(), in.GetSeed())

	metaList := make([]data.GroupMeta, 0, len(in.GetMetas()))
	for _, meta := range in.GetMetas() {
		metaList = append(metaList, data.GroupMeta{
			Type:        meta.GetType(),
			Len:         int(meta.GetLen()),
			ItemLenList: cast[int64, int](meta.GetItemLenList()),
			Ratio:       meta.GetRatio(),
		})
	}

	dataset, err := data.NewGroupDataset(metaList)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	config := Config{
		MicroBatchSize:         int(in.GetMicroBatchSize()),
		AccGrad:                int(in.GetAccGrad()),
		Shuffle:                in.GetShuffle(),
		Seed:                   in.GetSeed(),
		LengthClustering:       in.GetLengthClustering(),
		AllowMixedTaskAmongAcc: in.GetAllowMixedTaskAmongAcc(),
	}

	// Construct a sampler once to surface configuration errors at Init
	// rather than at the first Schedule call.
	if _, err = NewIndexSampler(dataset, int(in.GetWorldSize()), 0, config); err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}

	s.mu.Lock()
	s.dataset = dataset
	s.config = config
	s.worldSize = int(in.GetWorldSize())
	s.mu.Unlock()

	return new(empty.Empty), nil
}

// Schedule returns the given rank's flat index share for the given epoch,
// trimmed by the resume offset.
func (s *samplerServer) Schedule(ctx context.Context, in *ScheduleRequest) (*Schedule, error) {
	glog.Infof("epoch: %d Schedule called from rank %d", in.GetEpoch(), in.GetRank())

	s.mu.RLock()
	dataset, config, worldSize := s.dataset, s.config, s.worldSize
	s.mu.RUnlock()

	if dataset == nil {
		return nil, status.Error(codes.FailedPrecondition, "sampler: Init has not been called")
	}
	if in.GetEpoch() < 0 || in.GetStartIter() < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "sampler: negative epoch %d or start iteration %d", in.GetEpoch(), in.GetStartIter())
	}

	sampler, err := NewIndexSampler(dataset, worldSize, int(in.GetRank()), config)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	sampler.SetEpoch(int(in.GetEpoch()), int(in.GetStartIter()))

	return &Schedule{Indices: cast[int, int64](sampler.Indices())}, nil
}

// Reset is called at the end of an epoch during training.  Epoch state lives
// on the workers, so this only marks the boundary in the log.
func (s *samplerServer) Reset(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	glog.Info("Reset called")

	return new(empty.Empty), nil
}

// Finalize terminates the training environment.
func (s *samplerServer) Finalize(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	defer func() {
		signal.Notify(s.done, syscall.SIGTERM)
		close(s.done)
	}()

	glog.Info("Finalize called")
	defer glog.Flush()

	s.mu.Lock()
	s.dataset = nil
	s.mu.Unlock()

	return new(empty.Empty), nil
}

// cast casts the given slice.
func cast[T, U constraints.Integer](slice []T) []U {
	out := make([]U, len(slice))
	stride := ceil(len(slice), runtime.NumCPU())

	var wg sync.WaitGroup
	for base := 0; base < len(slice); base += stride {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			limit := min(base+stride, len(slice))
			for index := base; index < limit; index++ {
				out[index] = U(slice[index])
			}
		}(base)
	}
	wg.Wait()

	return out
}

// ceil returns the least integer value greater than or equal to
// numerator / denominator.
func ceil(numerator, denominator int) int {
	if numerator%denominator == 0 {
		return numerator / denominator
	}
	return numerator/denominator + 1
}
