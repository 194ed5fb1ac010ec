package tables

import "github.com/JonMunkholm/campaignclean/internal/core"

func init() {
	registerClient()
}

func registerClient() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "client",
			Group: Group,
			Label: "Clients",
			Order: 1,
		},
		Columns: []core.ColumnSpec{
			{Name: "client_id"},
			{Name: "age"},
			{Name: "job", Derive: core.MapText("job", core.Replace(core.NormalizeJob))},
			{Name: "marital"},
			{Name: "education", Derive: core.MapText("education", core.NormalizeEducation)},
			{Name: "credit_default", Derive: core.FlagColumn("credit_default", "yes")},
			{Name: "mortgage", Derive: core.FlagColumn("mortgage", "yes")},
		},
	})
}
