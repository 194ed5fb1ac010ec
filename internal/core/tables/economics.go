package tables

import "github.com/JonMunkholm/campaignclean/internal/core"

func init() {
	registerEconomics()
}

func registerEconomics() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "economics",
			Group: Group,
			Label: "Economic indicators",
			Order: 3,
		},
		Columns: []core.ColumnSpec{
			{Name: "client_id"},
			{Name: "cons_price_idx"},
			{Name: "euribor_three_months"},
		},
	})
}
