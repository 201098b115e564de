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

// FileScan identifies the file format of a Scan node. Formats differ in how
// much of a row window their readers can honor natively, which is why the
// optimizer dispatches on the concrete type.
type FileScan interface {
	fileScan()
	// FormatName is the short format tag used in explain output.
	FormatName() string
}

type (
	// CsvScan reads delimiter-separated text files. CSV readers cannot seek
	// to a row, so honoring an offset means reading from the start.
	CsvScan struct {
		Options CsvOptions
	}

	// ParquetScan reads Parquet files. Row-group metadata makes arbitrary
	// row windows cheap.
	ParquetScan struct {
		Options ParquetOptions
	}

	// IpcScan reads Arrow IPC files.
	IpcScan struct {
		Options IpcOptions
	}

	// AnonymousScan reads from a format-agnostic user reader that only
	// supports limiting the number of rows from the start.
	AnonymousScan struct {
		Name string
	}
)

func (*CsvScan) fileScan()       {}
func (*ParquetScan) fileScan()   {}
func (*IpcScan) fileScan()       {}
func (*AnonymousScan) fileScan() {}

func (*CsvScan) FormatName() string     { return "csv" }
func (*ParquetScan) FormatName() string { return "parquet" }
func (*IpcScan) FormatName() string     { return "ipc" }
func (*AnonymousScan) FormatName() string {
	return "anonymous"
}

// FileScanOptions are the format-independent scan settings.
type FileScanOptions struct {
	// Slice is the row window the reader should produce. Set by the
	// optimizer, never by the plan builder.
	Slice       *SliceSpec
	WithColumns []string
	RowIndex    *RowIndexOptions
}

// RowIndexOptions adds a row-count column to the scan output.
type RowIndexOptions struct {
	Name   string
	Offset uint64
}

// CsvOptions are the CSV parse settings.
type CsvOptions struct {
	Separator  rune
	HasHeader  bool
	SkipRows   int
	Comment    rune
	QuoteChar  rune
	NullValues []string
}

// ParquetOptions are the Parquet read settings.
type ParquetOptions struct {
	Parallel      bool
	UseStatistics bool
}

// IpcOptions are the Arrow IPC read settings.
type IpcOptions struct {
	MemoryMap bool
}

// ExternalScanOptions configure an ExternalScan.
type ExternalScanOptions struct {
	// NRows limits the source to its first n rows when set. External sources
	// cannot seek, so only a leading window can be delegated to them.
	NRows *uint64
	// Predicate is a row filter the source applies while producing rows.
	Predicate *ExprIR
	SchemaRef *Schema
}
