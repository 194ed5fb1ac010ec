// Package core provides the business logic for cleaning the bank marketing
// campaign dataset.
//
// The package is independent of the entry point: cmd/cleaner drives it with
// fixed folders, tests drive it with temporary ones.
//
// # Pipeline
//
// A run is one linear pass:
//
//  1. [PrepareOutput] creates the output folder and removes previous outputs.
//  2. [LoadDirectory] lists the zip archives of the input folder and reads each
//     with [ReadArchive]. Entries are parsed with [ParseCSV] into gota data
//     frames (all columns text) and concatenated in archive then entry order.
//  3. [Project] derives one table per registered [TableDefinition].
//  4. [WriteTable] writes each table as CSV with a header and no index.
//
// [Service.Run] wires the steps and returns a [RunResult].
//
// # Table Registry
//
// Output tables are registered at init time using [Register]. Each
// [TableDefinition] lists its columns; a column either copies the source column
// of the same name or is built by a [DeriveFunc]:
//
//	core.Register(core.TableDefinition{
//	    Info: core.TableInfo{Key: "client", Group: "campaign", Label: "Clients"},
//	    Columns: []core.ColumnSpec{
//	        {Name: "client_id"},
//	        {Name: "job", Derive: core.MapText("job", core.Replace(core.NormalizeJob))},
//	    },
//	})
//
// # Missing Values
//
// A missing cell is a gota NA element. Derived columns keep missing inputs
// missing unless the rule says otherwise ([FlagColumn] maps them to 0).
// Missing cells are written as empty CSV fields.
//
// # Error Handling
//
// Every failure aborts the run. [ErrNoValidData] marks an input folder without
// any table. Technical errors are mapped to coded user messages by [MapError].
package core
