package core

import "testing"

func registerTestTable(key, group string, order int) {
	if _, ok := Get(key); ok {
		return
	}
	Register(TableDefinition{
		Info:    TableInfo{Key: key, Group: group, Order: order},
		Columns: []ColumnSpec{{Name: "client_id"}},
	})
}

func TestRegistry_ByGroupOrder(t *testing.T) {
	registerTestTable("rt_zeta", "registry_test", 1)
	registerTestTable("rt_alpha", "registry_test", 2)
	registerTestTable("rt_beta", "registry_test", 2)

	defs := ByGroup("registry_test")
	if len(defs) != 3 {
		t.Fatalf("ByGroup() returned %d definitions, want 3", len(defs))
	}

	want := []string{"rt_zeta", "rt_alpha", "rt_beta"}
	for i, def := range defs {
		if def.Info.Key != want[i] {
			t.Errorf("ByGroup()[%d] = %q, want %q", i, def.Info.Key, want[i])
		}
	}
}

func TestRegistry_Get(t *testing.T) {
	registerTestTable("rt_get", "registry_test_get", 1)

	def, ok := Get("rt_get")
	if !ok {
		t.Fatal("Get() ok = false for a registered key")
	}
	if def.Info.FileName() != "rt_get.csv" {
		t.Errorf("FileName() = %q, want %q", def.Info.FileName(), "rt_get.csv")
	}

	if _, ok := Get("does_not_exist"); ok {
		t.Error("Get() ok = true for an unknown key")
	}
}

func TestRegister_PanicsOnDuplicate(t *testing.T) {
	registerTestTable("rt_dup", "registry_test_dup", 1)

	defer func() {
		if recover() == nil {
			t.Error("Register() did not panic on duplicate key")
		}
	}()
	Register(TableDefinition{
		Info:    TableInfo{Key: "rt_dup", Group: "registry_test_dup"},
		Columns: []ColumnSpec{{Name: "client_id"}},
	})
}

func TestRegister_PanicsWithoutColumns(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() did not panic for a definition without columns")
		}
	}()
	Register(TableDefinition{Info: TableInfo{Key: "rt_empty", Group: "registry_test_empty"}})
}
