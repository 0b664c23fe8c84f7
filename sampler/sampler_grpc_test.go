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
	"flag"
	"fmt"
	"math/rand"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
)

// TestSamplerServer exercises the service end to end against a running
// server; start one with go run . before invoking this test.
func TestSamplerServer(t *testing.T) {
	const (
		worldSize      = 1 << 2
		microBatchSize = 1 << 1
		accGrad        = 1 << 1
	)
	if testing.Short() {
		t.Skip("requires a running sampler server")
	}
	port := flag.Int("p", 50051, "The server port")
	flag.Parse()

	conn, err := grpc.Dial(fmt.Sprintf("localhost:%d", *port), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	c := NewSamplerClient(conn)

	arguments := &Arguments{
		WorldSize:        worldSize,
		MicroBatchSize:   microBatchSize,
		AccGrad:          accGrad,
		Shuffle:          true,
		LengthClustering: true,
		Metas: []*GroupMeta{
			{Type: "text", Len: 1 << 10, ItemLenList: cast[int, int64](rand.New(rand.NewSource(42)).Perm(1 << 10))},
			{Type: "image", Len: 1 << 9, ItemLenList: cast[int, int64](rand.New(rand.NewSource(43)).Perm(1 << 9)), Ratio: 0.5},
		},
	}
	if _, err = c.Init(context.Background(), arguments); err != nil {
		t.Fatalf("could not init: %v", err)
	}

	for epoch := 0; epoch < 4; epoch++ {
		t.Logf("epoch: %d", epoch)
		seen := make(map[int64]bool)
		for rank := 0; rank < worldSize; rank++ {
			r, err := c.Schedule(context.Background(), &ScheduleRequest{Rank: int64(rank), Epoch: int64(epoch)})
			if err != nil {
				t.Fatalf("could not schedule: %v", err)
			}
			for _, index := range r.GetIndices() {
				if seen[index] {
					t.Fatalf("index %d scheduled twice", index)
				}
				seen[index] = true
			}
			t.Logf("rank: %d got: %d indices", rank, len(r.GetIndices()))
		}
		if _, err = c.Reset(context.Background(), new(emptypb.Empty)); err != nil {
			t.Fatalf("could not reset: %v", err)
		}
	}

	if _, err = c.Finalize(context.Background(), new(emptypb.Empty)); err != nil {
		t.Fatalf("could not finalize: %v", err)
	}
}
