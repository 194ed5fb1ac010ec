package tables

import "github.com/JonMunkholm/campaignclean/internal/core"

func init() {
	registerCampaign()
}

// day and month are only read to build last_contact_date.
func registerCampaign() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "campaign",
			Group: Group,
			Label: "Campaign contacts",
			Order: 2,
		},
		Columns: []core.ColumnSpec{
			{Name: "client_id"},
			{Name: "number_contacts"},
			{Name: "contact_duration"},
			{Name: "previous_campaign_contacts"},
			{Name: "previous_outcome", Derive: core.FlagColumn("previous_outcome", "success")},
			{Name: "campaign_outcome", Derive: core.FlagColumn("campaign_outcome", "yes")},
			{Name: "last_contact_date", Derive: core.ContactDateColumn("last_contact_date", "month", "day")},
		},
	})
}
