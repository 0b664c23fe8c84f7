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

package data

import "testing"

// lengths returns synthetic per-sample lengths for a partition of the given
// size.
func lengths(size int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = i % 100
	}
	return out
}

func TestGroupMetaValidate(t *testing.T) {
	meta := GroupMeta{Type: "text", Len: 10, ItemLenList: lengths(10)}
	if err := meta.Validate(); err != nil {
		t.Fatalf("valid meta rejected: %v", err)
	}

	meta = GroupMeta{Type: "", Len: 10, ItemLenList: lengths(10)}
	if err := meta.Validate(); err == nil {
		t.Fatal("empty type accepted")
	}

	meta = GroupMeta{Type: "text", Len: 0, ItemLenList: nil}
	if err := meta.Validate(); err == nil {
		t.Fatal("non-positive length accepted")
	}

	meta = GroupMeta{Type: "text", Len: 10, ItemLenList: lengths(9)}
	if err := meta.Validate(); err == nil {
		t.Fatal("item length mismatch accepted")
	}

	meta = GroupMeta{Type: "text", Len: 10, ItemLenList: lengths(10), Ratio: 1.5}
	if err := meta.Validate(); err == nil {
		t.Fatal("ratio above 1 accepted")
	}
}

func TestGroupMetaWeight(t *testing.T) {
	meta := GroupMeta{Type: "text", Len: 500, ItemLenList: lengths(500)}
	if got := meta.Weight(); got != 500 {
		t.Fatalf("got %d, want 500", got)
	}

	meta.Ratio = 0.5
	if got := meta.Weight(); got != 250 {
		t.Fatalf("got %d, want 250", got)
	}

	meta = GroupMeta{Type: "text", Len: 3, ItemLenList: lengths(3), Ratio: 0.5}
	if got := meta.Weight(); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestNewGroupDataset(t *testing.T) {
	dataset, err := NewGroupDataset([]GroupMeta{
		{Type: "text", Len: 1000, ItemLenList: lengths(1000)},
		{Type: "image", Len: 500, ItemLenList: lengths(500), Ratio: 0.5},
	})
	if err != nil {
		t.Fatal(err)
	}
	if dataset.Len() != 1500 {
		t.Fatalf("got %d, want 1500", dataset.Len())
	}
	if len(dataset.MetaList()) != 2 {
		t.Fatalf("got %d partitions, want 2", len(dataset.MetaList()))
	}

	if _, err = NewGroupDataset(nil); err == nil {
		t.Fatal("empty meta list accepted")
	}

	if _, err = NewGroupDataset([]GroupMeta{
		{Type: "text", Len: 10, ItemLenList: lengths(9)},
	}); err == nil {
		t.Fatal("invalid partition accepted")
	}
}

func TestGroupLens(t *testing.T) {
	const (
		microBatchSize = 2
		worldSize      = 2
		accGrad        = 1
	)
	metaList := []GroupMeta{
		{Type: "text", Len: 1000, ItemLenList: lengths(1000)},
		{Type: "image", Len: 500, ItemLenList: lengths(500), Ratio: 0.5},
	}

	labels, lens, totalSize, err := GroupLens(metaList, microBatchSize, worldSize, accGrad)
	if err != nil {
		t.Fatal(err)
	}
	if totalSize != 1248 {
		t.Fatalf("got total size %d, want 1248", totalSize)
	}
	if lens["text"] != 1000 {
		t.Fatalf("got %d usable text samples, want 1000", lens["text"])
	}
	if lens["image"] != 248 {
		t.Fatalf("got %d usable image samples, want 248", lens["image"])
	}
	if len(labels) != 2 || labels[0] != "text" || labels[1] != "image" {
		t.Fatalf("got labels %v, want [text image]", labels)
	}
}

func TestGroupLensPoolsSharedLabels(t *testing.T) {
	const (
		microBatchSize = 4
		worldSize      = 2
		accGrad        = 2
	)
	metaList := []GroupMeta{
		{Type: "text", Len: 30, ItemLenList: lengths(30)},
		{Type: "image", Len: 16, ItemLenList: lengths(16)},
		{Type: "text", Len: 7, ItemLenList: lengths(7)},
	}

	labels, lens, totalSize, err := GroupLens(metaList, microBatchSize, worldSize, accGrad)
	if err != nil {
		t.Fatal(err)
	}
	// align = 16; text pools 37 -> 32, image keeps 16.
	if lens["text"] != 32 {
		t.Fatalf("got %d usable text samples, want 32", lens["text"])
	}
	if lens["image"] != 16 {
		t.Fatalf("got %d usable image samples, want 16", lens["image"])
	}
	if totalSize != 48 {
		t.Fatalf("got total size %d, want 48", totalSize)
	}
	if len(labels) != 2 {
		t.Fatalf("got %d labels, want 2", len(labels))
	}
}

func TestGroupLensRejectsInvalidArguments(t *testing.T) {
	metaList := []GroupMeta{
		{Type: "text", Len: 16, ItemLenList: lengths(16)},
	}

	if _, _, _, err := GroupLens(metaList, 0, 2, 1); err == nil {
		t.Fatal("non-positive micro batch size accepted")
	}
	if _, _, _, err := GroupLens(metaList, 2, 0, 1); err == nil {
		t.Fatal("non-positive world size accepted")
	}
	if _, _, _, err := GroupLens(metaList, 2, 2, 0); err == nil {
		t.Fatal("non-positive accumulation steps accepted")
	}
}
