// Copyright 2025 FlintDB Authors.
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

package plan

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// DataFrame is an eagerly materialized frame backed by an Arrow record
// batch. A DataFrameScan node holds one; slicing it is a zero-copy window
// over the underlying arrays.
type DataFrame struct {
	rec arrow.Record
}

// NewDataFrame wraps a record batch. The frame takes over the caller's
// reference; Release it through the frame when done.
func NewDataFrame(rec arrow.Record) *DataFrame {
	return &DataFrame{rec: rec}
}

// Height returns the number of rows.
func (df *DataFrame) Height() int64 {
	return df.rec.NumRows()
}

// Width returns the number of columns.
func (df *DataFrame) Width() int64 {
	return df.rec.NumCols()
}

// Record returns the backing record batch.
func (df *DataFrame) Record() arrow.Record {
	return df.rec
}

// Release drops the frame's reference to the backing arrays.
func (df *DataFrame) Release() {
	df.rec.Release()
}

// Slice returns a frame with length rows starting at offset. A negative
// offset counts from the end; windows reaching past either edge are clamped
// rather than erroring, matching lazy slice semantics.
func (df *DataFrame) Slice(offset int64, length uint64) *DataFrame {
	height := df.rec.NumRows()
	start := offset
	if start < 0 {
		start += height
		if start < 0 {
			start = 0
		}
	}
	if start > height {
		start = height
	}
	end := start + int64(length)
	if end > height || end < start {
		end = height
	}
	return &DataFrame{rec: df.rec.NewSlice(start, end)}
}
